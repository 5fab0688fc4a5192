package services

import (
	"context"

	"guest-admin/models"
	"guest-admin/repositories"
	"guest-admin/validation"
)

const (
	defaultReservationTime = "19:00"
	defaultPartySize       = 2
)

type ReservationService struct {
	childService[models.Reservation]
}

func NewReservationService(store repositories.Store) *ReservationService {
	return &ReservationService{childService[models.Reservation]{
		name:      "reservations",
		repo:      store.Reservations,
		guests:    store.Guests,
		validate:  validation.ValidateReservation,
		normalize: func(r *models.Reservation) { normalizeDate(&r.ReservationDate) },
		orderBy:   "reservation_date",
	}}
}

func (s *ReservationService) ListByGuest(ctx context.Context, guestID string) ([]models.Reservation, error) {
	return s.listByGuest(ctx, guestID)
}

func (s *ReservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	return s.get(ctx, id)
}

// Create fills the booking form defaults (restaurant, 19:00, two people,
// pending) before validating.
func (s *ReservationService) Create(ctx context.Context, guestID string, r *models.Reservation) error {
	r.ID = ""
	r.GuestID = guestID
	if r.ReservationType == "" {
		r.ReservationType = models.ReservationRestaurant
	}
	if r.ReservationTime == "" {
		r.ReservationTime = defaultReservationTime
	}
	if r.PartySize == 0 {
		r.PartySize = defaultPartySize
	}
	if r.Status == "" {
		r.Status = models.ReservationPending
	}
	return s.create(ctx, guestID, r)
}

func (s *ReservationService) Update(ctx context.Context, id string, in models.Reservation) (*models.Reservation, error) {
	return s.update(ctx, id, func(row *models.Reservation) {
		in.ID, in.GuestID, in.CreatedAt = row.ID, row.GuestID, row.CreatedAt
		*row = in
	})
}

// Patch applies a calendar edit: venue, date, time and status.
func (s *ReservationService) Patch(ctx context.Context, id string, p ItemPatch) (*models.Reservation, error) {
	return s.update(ctx, id, func(row *models.Reservation) {
		if p.Title != nil {
			row.VenueName = *p.Title
		}
		if p.Date != nil {
			row.ReservationDate = *p.Date
		}
		if p.Time != nil {
			row.ReservationTime = *p.Time
		}
		if p.Status != nil {
			row.Status = *p.Status
		}
	})
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
