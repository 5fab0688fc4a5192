package services

import (
	"context"

	"guest-admin/models"
	"guest-admin/reports"
	"guest-admin/repositories"
	"guest-admin/validation"
)

type EventService struct {
	childService[models.GuestEvent]
}

func NewEventService(store repositories.Store) *EventService {
	return &EventService{childService[models.GuestEvent]{
		name:      "guest_events",
		repo:      store.Events,
		guests:    store.Guests,
		validate:  validation.ValidateEvent,
		normalize: func(e *models.GuestEvent) { normalizeOptionalDate(&e.EventDate) },
		orderBy:   "event_date",
	}}
}

func (s *EventService) ListByGuest(ctx context.Context, guestID string) ([]models.GuestEvent, error) {
	return s.listByGuest(ctx, guestID)
}

func (s *EventService) Get(ctx context.Context, id string) (*models.GuestEvent, error) {
	return s.get(ctx, id)
}

func (s *EventService) Create(ctx context.Context, guestID string, e *models.GuestEvent) error {
	e.ID = ""
	e.GuestID = guestID
	return s.create(ctx, guestID, e)
}

func (s *EventService) Update(ctx context.Context, id string, in models.GuestEvent) (*models.GuestEvent, error) {
	return s.update(ctx, id, func(row *models.GuestEvent) {
		in.ID, in.GuestID, in.CreatedAt = row.ID, row.GuestID, row.CreatedAt
		*row = in
	})
}

// eventStatuses are the calendar statuses an event can be patched to.
var eventStatuses = []string{reports.EventScheduled, reports.EventAttended}

// Patch applies a calendar edit: name, date and attendance. A status other
// than scheduled or attended is rejected before the row is loaded.
func (s *EventService) Patch(ctx context.Context, id string, p ItemPatch) (*models.GuestEvent, error) {
	if p.Status != nil {
		if fe := validation.OneOf(*p.Status, eventStatuses, "Status"); fe != nil {
			return nil, validation.Errors{*fe}
		}
	}
	return s.update(ctx, id, func(row *models.GuestEvent) {
		if p.Title != nil {
			row.EventName = *p.Title
		}
		if p.Date != nil {
			date := *p.Date
			row.EventDate = &date
		}
		if p.Status != nil && *p.Status != "" {
			row.Attended = *p.Status == reports.EventAttended
		}
		if p.Attended != nil {
			row.Attended = *p.Attended
		}
	})
}

// ToggleAttendance flips the attended flag and returns the stored row.
func (s *EventService) ToggleAttendance(ctx context.Context, id string) (*models.GuestEvent, error) {
	return s.update(ctx, id, func(row *models.GuestEvent) {
		row.Attended = !row.Attended
	})
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
