package models

import (
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`

	FamilyName string `gorm:"column:family_name;size:100;index" json:"family_name"`
	RoomNumber string `gorm:"column:room_number;size:20" json:"room_number"`
	Pax        int    `gorm:"column:pax" json:"pax"`
	Country    string `gorm:"column:country;size:100" json:"country"`
	Agency     string `gorm:"column:agency;size:150" json:"agency"`
	Nights     int    `gorm:"column:nights" json:"nights"`

	// ISO dates (YYYY-MM-DD), stored as text so they sort the same on every driver.
	CheckInDate  string  `gorm:"column:check_in_date;type:varchar(10);index" json:"check_in_date"`
	CheckOutDate *string `gorm:"column:check_out_date;type:varchar(10)" json:"check_out_date"`

	Notes string `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	newID(&g.ID)
	return nil
}

// GuestName is the id -> family name projection used by the calendar.
type GuestName struct {
	ID         string `json:"id"`
	FamilyName string `json:"family_name"`
}
