package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest-admin/models"
	"guest-admin/reports"
	"guest-admin/repositories"
)

func newCalendarService(store repositories.Store) *CalendarService {
	return NewCalendarService(store,
		NewAppointmentService(store),
		NewReservationService(store),
		NewEventService(store))
}

func TestCalendarMonthBucketsAndSorts(t *testing.T) {
	store := setupTestStore(t)
	svc := newCalendarService(store)
	ctx := context.Background()
	g := seedGuest(t, store, "Ferreira", "512", "2024-03-01")

	late := models.Appointment{GuestID: g.ID, Title: "Presentation", AppointmentDate: "2024-03-14", AppointmentTime: "09:00"}
	early := models.Reservation{GuestID: g.ID, VenueName: "Spa Oasis", ReservationType: models.ReservationSpa, ReservationDate: "2024-03-14", ReservationTime: "08:30", PartySize: 2}
	outside := models.Appointment{GuestID: g.ID, Title: "Presentation", AppointmentDate: "2024-04-01", AppointmentTime: "10:00"}
	undated := models.GuestEvent{GuestID: g.ID, EventName: "Gala night", HasAccess: true}
	dated := models.GuestEvent{GuestID: g.ID, EventName: "Gala night", HasAccess: true, Attended: true, EventDate: strPtr("2024-03-02")}
	orphan := models.Appointment{GuestID: "gone", Title: "Presentation", AppointmentDate: "2024-03-20", AppointmentTime: "12:00"}

	require.NoError(t, store.Appointments.Create(ctx, &late))
	require.NoError(t, store.Reservations.Create(ctx, &early))
	require.NoError(t, store.Appointments.Create(ctx, &outside))
	require.NoError(t, store.Events.Create(ctx, &undated))
	require.NoError(t, store.Events.Create(ctx, &dated))
	require.NoError(t, store.Appointments.Create(ctx, &orphan))

	month, err := svc.Month(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 31, month.DaysInMonth)
	assert.Equal(t, int(time.Friday), month.StartingWeekday)
	require.Len(t, month.Items, 4)

	day14 := month.Days[13].Items
	require.Len(t, day14, 2)
	assert.Equal(t, early.ID, day14[0].ID)
	assert.Equal(t, "Spa Oasis (spa)", day14[0].Title)
	assert.Equal(t, late.ID, day14[1].ID)
	assert.Equal(t, "Ferreira", day14[1].GuestName)

	day2 := month.Days[1].Items
	require.Len(t, day2, 1)
	assert.Equal(t, reports.ItemEvent, day2[0].Type)
	assert.Equal(t, "attended", day2[0].Status)

	assert.Equal(t, "Unknown", month.Days[19].Items[0].GuestName)
}

func TestCalendarUpdateItemDispatchesByType(t *testing.T) {
	store := setupTestStore(t)
	svc := newCalendarService(store)
	ctx := context.Background()
	g := seedGuest(t, store, "Ferreira", "512", "2024-03-01")

	a := models.Appointment{AppointmentDate: "2024-03-05"}
	require.NoError(t, svc.appointments.Create(ctx, g.ID, &a))
	e := models.GuestEvent{EventName: "Gala night", HasAccess: true, EventDate: strPtr("2024-03-06")}
	require.NoError(t, svc.events.Create(ctx, g.ID, &e))

	completed := models.AppointmentCompleted
	_, err := svc.UpdateItem(ctx, reports.ItemAppointment, a.ID, ItemPatch{Status: &completed})
	require.NoError(t, err)
	assert.Len(t, salesFor(t, store, g.ID), 1)

	attended := true
	out, err := svc.UpdateItem(ctx, reports.ItemEvent, e.ID, ItemPatch{Attended: &attended})
	require.NoError(t, err)
	assert.True(t, out.(*models.GuestEvent).Attended)

	_, err = svc.UpdateItem(ctx, "meeting", a.ID, ItemPatch{})
	assert.ErrorIs(t, err, ErrUnknownItemType)

	require.NoError(t, svc.DeleteItem(ctx, reports.ItemEvent, e.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, reports.ItemEvent, e.ID), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, "meeting", e.ID), ErrUnknownItemType)
}

func TestCalendarUpdateItemValidates(t *testing.T) {
	store := setupTestStore(t)
	svc := newCalendarService(store)
	ctx := context.Background()
	g := seedGuest(t, store, "Ferreira", "512", "2024-03-01")

	a := models.Appointment{AppointmentDate: "2024-03-05"}
	require.NoError(t, svc.appointments.Create(ctx, g.ID, &a))

	bad := "7pm"
	_, err := svc.UpdateItem(ctx, reports.ItemAppointment, a.ID, ItemPatch{Time: &bad})
	_, ok := ValidationErrors(err)
	assert.True(t, ok)

	stored, err := svc.appointments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", stored.AppointmentTime)
}

func TestCalendarMonthPlacesTimestampDatesOnTheirDay(t *testing.T) {
	store := setupTestStore(t)
	svc := newCalendarService(store)
	ctx := context.Background()
	g := seedGuest(t, store, "Ferreira", "512", "2024-05-01")

	lastDay := models.Appointment{AppointmentDate: "2024-05-31T09:00:00"}
	require.NoError(t, svc.appointments.Create(ctx, g.ID, &lastDay))
	utc := models.Appointment{AppointmentDate: "2024-05-10T09:00:00Z"}
	require.NoError(t, svc.appointments.Create(ctx, g.ID, &utc))
	dinner := models.Reservation{VenueName: "Terrace", ReservationDate: "2024-05-10 18:45:00"}
	require.NoError(t, svc.reservations.Create(ctx, g.ID, &dinner))
	gala := models.GuestEvent{EventName: "Gala night", HasAccess: true, EventDate: strPtr("2024-05-20T21:00:00+02:00")}
	require.NoError(t, svc.events.Create(ctx, g.ID, &gala))

	assert.Equal(t, "2024-05-31", lastDay.AppointmentDate)
	assert.Equal(t, "2024-05-10", utc.AppointmentDate)

	month, err := svc.Month(ctx, 2024, time.May)
	require.NoError(t, err)
	require.Len(t, month.Items, 4)

	day31 := month.Days[30].Items
	require.Len(t, day31, 1)
	assert.Equal(t, lastDay.ID, day31[0].ID)
	assert.Equal(t, "2024-05-31", day31[0].Date)

	day10 := month.Days[9].Items
	require.Len(t, day10, 2)
	assert.Equal(t, utc.ID, day10[0].ID)
	assert.Equal(t, "2024-05-10", day10[0].Date)
	assert.Equal(t, dinner.ID, day10[1].ID)

	day20 := month.Days[19].Items
	require.Len(t, day20, 1)
	assert.Equal(t, reports.ItemEvent, day20[0].Type)

	moved := "2024-05-12T08:00:00"
	_, err = svc.UpdateItem(ctx, reports.ItemAppointment, utc.ID, ItemPatch{Date: &moved})
	require.NoError(t, err)
	stored, err := svc.appointments.Get(ctx, utc.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-12", stored.AppointmentDate)
}
