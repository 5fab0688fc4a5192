package models

import (
	"time"

	"gorm.io/gorm"
)

type Sale struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GuestID       string  `gorm:"column:guest_id;type:varchar(36);index" json:"guest_id"`
	AppointmentID *string `gorm:"column:appointment_id;type:varchar(36);index" json:"appointment_id"`

	AttendedPresentation bool `gorm:"column:attended_presentation;default:false" json:"attended_presentation"`
	MadePurchase         bool `gorm:"column:made_purchase;default:false" json:"made_purchase"`

	// nil until a purchase is recorded
	PurchaseAmount *float64 `gorm:"column:purchase_amount" json:"purchase_amount"`
	PurchaseDate   *string  `gorm:"column:purchase_date;type:varchar(10)" json:"purchase_date"`
	PaymentMethod  string   `gorm:"column:payment_method;size:50" json:"payment_method"`
	Notes          string   `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

// Amount returns the purchase amount, 0 when unset.
func (s Sale) Amount() float64 {
	if s.PurchaseAmount == nil {
		return 0
	}
	return *s.PurchaseAmount
}
