package models

import (
	"time"

	"gorm.io/gorm"
)

type GuestEvent struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GuestID string `gorm:"column:guest_id;type:varchar(36);index" json:"guest_id"`

	EventName string  `gorm:"column:event_name;size:150" json:"event_name"`
	HasAccess bool    `gorm:"column:has_access" json:"has_access"`
	Attended  bool    `gorm:"column:attended;default:false" json:"attended"`
	EventDate *string `gorm:"column:event_date;type:varchar(10);index" json:"event_date"`
	Notes     string  `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (GuestEvent) TableName() string { return "guest_events" }

func (e *GuestEvent) BeforeCreate(tx *gorm.DB) error {
	newID(&e.ID)
	return nil
}
