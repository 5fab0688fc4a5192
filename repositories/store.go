package repositories

import (
	"gorm.io/gorm"

	"guest-admin/models"
)

// Store bundles one repository per table. Services receive it (or single
// fields of it) instead of a global DB handle.
type Store struct {
	Guests       Repository[models.Guest]
	Events       Repository[models.GuestEvent]
	Appointments Repository[models.Appointment]
	Sales        Repository[models.Sale]
	Reservations Repository[models.Reservation]
}

func NewStore(db *gorm.DB) Store {
	return Store{
		Guests: NewGormRepository[models.Guest](db,
			"family_name", "room_number", "pax", "country", "agency", "nights",
			"check_in_date", "check_out_date", "notes", "created_at", "updated_at"),
		Events: NewGormRepository[models.GuestEvent](db,
			"guest_id", "event_name", "has_access", "attended", "event_date", "notes", "created_at"),
		Appointments: NewGormRepository[models.Appointment](db,
			"guest_id", "title", "appointment_date", "appointment_time", "duration_minutes",
			"location", "status", "notes", "created_at"),
		Sales: NewGormRepository[models.Sale](db,
			"guest_id", "appointment_id", "attended_presentation", "made_purchase",
			"purchase_amount", "purchase_date", "payment_method", "notes", "created_at"),
		Reservations: NewGormRepository[models.Reservation](db,
			"guest_id", "reservation_type", "venue_name", "reservation_date", "reservation_time",
			"party_size", "status", "confirmation_number", "notes", "created_at"),
	}
}
