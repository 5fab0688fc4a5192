// Package reports turns fetched rows into the calendar and dashboard views.
// Everything here is pure; fetching lives in services.
package reports

import (
	"fmt"
	"sort"
	"time"

	"guest-admin/models"
)

const (
	ItemAppointment = "appointment"
	ItemReservation = "reservation"
	ItemEvent       = "event"
)

// Calendar status of a guest event.
const (
	EventScheduled = "scheduled"
	EventAttended  = "attended"
)

const unknownGuest = "Unknown"

type CalendarItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	GuestID   string `json:"guest_id"`
	GuestName string `json:"guest_name"`
	Status    string `json:"status,omitempty"`
}

// GuestLookup maps guest id to family name.
type GuestLookup map[string]string

func NewGuestLookup(names []models.GuestName) GuestLookup {
	lookup := make(GuestLookup, len(names))
	for _, n := range names {
		lookup[n.ID] = n.FamilyName
	}
	return lookup
}

func (l GuestLookup) name(id string) string {
	if name, ok := l[id]; ok && name != "" {
		return name
	}
	return unknownGuest
}

// BuildCalendar normalizes the three entity kinds into calendar items and
// sorts them by date, then time. Events without a date are skipped; events
// have no time of their own and sit at 00:00.
func BuildCalendar(
	appointments []models.Appointment,
	reservations []models.Reservation,
	events []models.GuestEvent,
	guests GuestLookup,
) []CalendarItem {
	items := make([]CalendarItem, 0, len(appointments)+len(reservations)+len(events))

	for _, a := range appointments {
		items = append(items, CalendarItem{
			ID:        a.ID,
			Type:      ItemAppointment,
			Title:     a.Title,
			Date:      a.AppointmentDate,
			Time:      a.AppointmentTime,
			GuestID:   a.GuestID,
			GuestName: guests.name(a.GuestID),
			Status:    a.Status,
		})
	}

	for _, r := range reservations {
		items = append(items, CalendarItem{
			ID:        r.ID,
			Type:      ItemReservation,
			Title:     fmt.Sprintf("%s (%s)", r.VenueName, r.ReservationType),
			Date:      r.ReservationDate,
			Time:      r.ReservationTime,
			GuestID:   r.GuestID,
			GuestName: guests.name(r.GuestID),
			Status:    r.Status,
		})
	}

	for _, e := range events {
		if e.EventDate == nil || *e.EventDate == "" {
			continue
		}
		status := EventScheduled
		if e.Attended {
			status = EventAttended
		}
		items = append(items, CalendarItem{
			ID:        e.ID,
			Type:      ItemEvent,
			Title:     e.EventName,
			Date:      *e.EventDate,
			Time:      "00:00",
			GuestID:   e.GuestID,
			GuestName: guests.name(e.GuestID),
			Status:    status,
		})
	}

	SortCalendar(items)
	return items
}

// SortCalendar orders items by date then time string; equal keys keep
// their input order.
func SortCalendar(items []CalendarItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
}

type CalendarDay struct {
	Day   int            `json:"day"`
	Date  string         `json:"date"`
	Items []CalendarItem `json:"items"`
}

type CalendarMonth struct {
	Year            int            `json:"year"`
	Month           int            `json:"month"`
	DaysInMonth     int            `json:"days_in_month"`
	StartingWeekday int            `json:"starting_weekday"`
	Days            []CalendarDay  `json:"days"`
	Items           []CalendarItem `json:"items"`
}

// MonthRange returns the first and last ISO dates of a month.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// BucketByDay lays sorted items out on a month grid, one bucket per day.
// Items dated outside the month are dropped.
func BucketByDay(year int, month time.Month, items []CalendarItem) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, daysInMonth)
	index := make(map[string]int, daysInMonth)
	for i := range days {
		date := first.AddDate(0, 0, i).Format("2006-01-02")
		days[i] = CalendarDay{Day: i + 1, Date: date, Items: []CalendarItem{}}
		index[date] = i
	}

	for _, item := range items {
		if i, ok := index[item.Date]; ok {
			days[i].Items = append(days[i].Items, item)
		}
	}

	return CalendarMonth{
		Year:            year,
		Month:           int(month),
		DaysInMonth:     daysInMonth,
		StartingWeekday: int(first.Weekday()),
		Days:            days,
		Items:           items,
	}
}
