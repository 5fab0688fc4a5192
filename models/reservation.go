package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReservationRestaurant = "restaurant"
	ReservationSpa        = "spa"
	ReservationActivity   = "activity"
	ReservationTransport  = "transport"
	ReservationOther      = "other"
)

var ReservationTypes = []string{
	ReservationRestaurant,
	ReservationSpa,
	ReservationActivity,
	ReservationTransport,
	ReservationOther,
}

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCompleted = "completed"
	ReservationCanceled  = "canceled"
)

var ReservationStatuses = []string{
	ReservationPending,
	ReservationConfirmed,
	ReservationCompleted,
	ReservationCanceled,
}

type Reservation struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GuestID string `gorm:"column:guest_id;type:varchar(36);index" json:"guest_id"`

	ReservationType    string `gorm:"column:reservation_type;size:32;default:restaurant" json:"reservation_type"`
	VenueName          string `gorm:"column:venue_name;size:150" json:"venue_name"`
	ReservationDate    string `gorm:"column:reservation_date;type:varchar(10);index" json:"reservation_date"`
	ReservationTime    string `gorm:"column:reservation_time;type:varchar(5)" json:"reservation_time"`
	PartySize          int    `gorm:"column:party_size" json:"party_size"`
	Status             string `gorm:"column:status;size:32;default:pending" json:"status"`
	ConfirmationNumber string `gorm:"column:confirmation_number;size:64" json:"confirmation_number"`
	Notes              string `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}
