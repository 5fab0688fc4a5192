package models

import "github.com/google/uuid"

// newID fills an empty primary key before insert. Ids are opaque to callers.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// Tables lists every model in parent -> child order for AutoMigrate.
func Tables() []interface{} {
	return []interface{}{
		&Guest{},
		&GuestEvent{},
		&Appointment{},
		&Sale{},
		&Reservation{},
		&DashboardSetting{},
	}
}
