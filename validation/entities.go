package validation

import "guest-admin/models"

func ValidateGuest(g models.Guest) Result {
	checkOut := ""
	if g.CheckOutDate != nil {
		checkOut = *g.CheckOutDate
	}

	return Validate(
		func() *FieldError { return Required(g.FamilyName, "Family name") },
		func() *FieldError { return MinLength(g.FamilyName, 2, "Family name") },
		func() *FieldError { return MaxLength(g.FamilyName, 100, "Family name") },

		func() *FieldError { return Required(g.RoomNumber, "Room number") },
		func() *FieldError { return MinLength(g.RoomNumber, 1, "Room number") },
		func() *FieldError { return MaxLength(g.RoomNumber, 20, "Room number") },

		func() *FieldError { return PositiveNumber(float64(g.Pax), "Number of guests") },
		func() *FieldError {
			return AtMost(float64(g.Pax), 20, "Number of guests", "Number of guests cannot exceed 20")
		},

		func() *FieldError { return Required(g.Country, "Country") },
		func() *FieldError { return MinLength(g.Country, 2, "Country") },

		func() *FieldError { return PositiveNumber(float64(g.Nights), "Number of nights") },
		func() *FieldError {
			return AtMost(float64(g.Nights), 365, "Number of nights", "Number of nights cannot exceed 365")
		},

		func() *FieldError { return ValidDate(g.CheckInDate, "Check-in date") },
		func() *FieldError {
			if checkOut == "" {
				return nil
			}
			return ValidDate(checkOut, "Check-out date")
		},
		func() *FieldError { return DateAfter(g.CheckInDate, checkOut, "Check-in date", "Check-out date") },

		func() *FieldError { return MaxLength(g.Notes, 1000, "Notes") },
	)
}

func ValidateAppointment(a models.Appointment) Result {
	return Validate(
		func() *FieldError { return Required(a.Title, "Title") },
		func() *FieldError { return MinLength(a.Title, 3, "Title") },
		func() *FieldError { return ValidDate(a.AppointmentDate, "Appointment date") },
		func() *FieldError { return Required(a.AppointmentTime, "Appointment time") },
		func() *FieldError {
			if !IsClockTime(a.AppointmentTime) {
				return &FieldError{Field: "Appointment time", Message: "Time must be in HH:MM format"}
			}
			return nil
		},
		func() *FieldError { return OneOf(a.Status, models.AppointmentStatuses, "Status") },
	)
}

func ValidateReservation(r models.Reservation) Result {
	return Validate(
		func() *FieldError { return Required(r.VenueName, "Venue name") },
		func() *FieldError { return MinLength(r.VenueName, 2, "Venue name") },
		func() *FieldError { return ValidDate(r.ReservationDate, "Reservation date") },
		func() *FieldError { return Required(r.ReservationTime, "Reservation time") },
		func() *FieldError { return PositiveNumber(float64(r.PartySize), "Party size") },
		func() *FieldError {
			return AtMost(float64(r.PartySize), 50, "Party size", "Party size cannot exceed 50")
		},
		func() *FieldError { return OneOf(r.ReservationType, models.ReservationTypes, "Reservation type") },
		func() *FieldError { return OneOf(r.Status, models.ReservationStatuses, "Status") },
	)
}

// ValidateSale only checks purchase fields when a purchase was made.
func ValidateSale(s models.Sale) Result {
	if !s.MadePurchase {
		return Result{IsValid: true, Errors: []FieldError{}}
	}

	return Validate(
		func() *FieldError { return Required(s.PurchaseAmount, "Purchase amount") },
		func() *FieldError {
			if s.PurchaseAmount == nil {
				return nil
			}
			return PositiveNumber(*s.PurchaseAmount, "Purchase amount")
		},
		func() *FieldError {
			return AtMost(s.Amount(), 1000000, "Purchase amount", "Purchase amount seems too high")
		},
		func() *FieldError {
			if s.PurchaseDate == nil || *s.PurchaseDate == "" {
				return nil
			}
			return ValidDate(*s.PurchaseDate, "Purchase date")
		},
	)
}

func ValidateEvent(e models.GuestEvent) Result {
	return Validate(
		func() *FieldError { return Required(e.EventName, "Event name") },
		func() *FieldError { return MinLength(e.EventName, 3, "Event name") },
		func() *FieldError {
			if e.EventDate == nil || *e.EventDate == "" {
				return nil
			}
			return ValidDate(*e.EventDate, "Event date")
		},
	)
}
