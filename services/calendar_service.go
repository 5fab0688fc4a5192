package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"guest-admin/config"
	"guest-admin/models"
	"guest-admin/reports"
	"guest-admin/repositories"
)

// ItemPatch is an edit made from the calendar. Nil fields are left alone.
// Title maps to the appointment title, the reservation venue or the event
// name; Attended only applies to events.
type ItemPatch struct {
	Title    *string `json:"title"`
	Date     *string `json:"date" binding:"omitempty,isodate"`
	Time     *string `json:"time" binding:"omitempty,hhmm"`
	Status   *string `json:"status"`
	Attended *bool   `json:"attended"`
}

type CalendarService struct {
	store        repositories.Store
	appointments *AppointmentService
	reservations *ReservationService
	events       *EventService
}

func NewCalendarService(store repositories.Store, appointments *AppointmentService, reservations *ReservationService, events *EventService) *CalendarService {
	return &CalendarService{
		store:        store,
		appointments: appointments,
		reservations: reservations,
		events:       events,
	}
}

// Month fetches the month's appointments, reservations and events plus the
// guest names concurrently, then builds the day grid. Any failed fetch
// fails the whole call.
func (s *CalendarService) Month(ctx context.Context, year int, month time.Month) (reports.CalendarMonth, error) {
	from, to := reports.MonthRange(year, month)

	var (
		appointments []models.Appointment
		reservations []models.Reservation
		events       []models.GuestEvent
		names        []models.GuestName
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		appointments, err = s.store.Appointments.Find(gctx, repositories.Query{
			Filters: repositories.Between("appointment_date", from, to),
		})
		return err
	})
	eg.Go(func() (err error) {
		reservations, err = s.store.Reservations.Find(gctx, repositories.Query{
			Filters: repositories.Between("reservation_date", from, to),
		})
		return err
	})
	eg.Go(func() (err error) {
		events, err = s.store.Events.Find(gctx, repositories.Query{
			Filters: repositories.Between("event_date", from, to),
		})
		return err
	})
	eg.Go(func() (err error) {
		names, err = guestNames(gctx, s.store.Guests)
		return err
	})
	if err := eg.Wait(); err != nil {
		config.Log.Error("calendar fetch failed", zap.Int("year", year), zap.Int("month", int(month)), zap.Error(err))
		return reports.CalendarMonth{}, fmt.Errorf("calendar: %04d-%02d: %w", year, int(month), err)
	}

	items := reports.BuildCalendar(appointments, reservations, events, reports.NewGuestLookup(names))
	return reports.BucketByDay(year, month, items), nil
}

// UpdateItem routes a calendar edit to the owning table. Only appointments
// trigger the sale sync.
func (s *CalendarService) UpdateItem(ctx context.Context, itemType, id string, p ItemPatch) (interface{}, error) {
	switch itemType {
	case reports.ItemAppointment:
		return s.appointments.Patch(ctx, id, p)
	case reports.ItemReservation:
		return s.reservations.Patch(ctx, id, p)
	case reports.ItemEvent:
		return s.events.Patch(ctx, id, p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, itemType)
	}
}

func (s *CalendarService) DeleteItem(ctx context.Context, itemType, id string) error {
	switch itemType {
	case reports.ItemAppointment:
		return s.appointments.Delete(ctx, id)
	case reports.ItemReservation:
		return s.reservations.Delete(ctx, id)
	case reports.ItemEvent:
		return s.events.Delete(ctx, id)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItemType, itemType)
	}
}
