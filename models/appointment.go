package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCanceled  = "canceled"
	AppointmentNoShow    = "no-show"
)

var AppointmentStatuses = []string{
	AppointmentScheduled,
	AppointmentConfirmed,
	AppointmentCompleted,
	AppointmentCanceled,
	AppointmentNoShow,
}

type Appointment struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GuestID string `gorm:"column:guest_id;type:varchar(36);index" json:"guest_id"`

	Title           string `gorm:"column:title;size:150" json:"title"`
	AppointmentDate string `gorm:"column:appointment_date;type:varchar(10);index" json:"appointment_date"`
	AppointmentTime string `gorm:"column:appointment_time;type:varchar(5)" json:"appointment_time"`
	DurationMinutes int    `gorm:"column:duration_minutes;default:60" json:"duration_minutes"`
	Location        string `gorm:"column:location;size:150" json:"location"`
	Status          string `gorm:"column:status;size:32;default:scheduled" json:"status"`
	Notes           string `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}
