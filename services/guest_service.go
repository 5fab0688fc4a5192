package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"guest-admin/config"
	"guest-admin/models"
	"guest-admin/repositories"
	"guest-admin/validation"
)

type GuestService struct {
	store repositories.Store
}

func NewGuestService(store repositories.Store) *GuestService {
	return &GuestService{store: store}
}

// GuestDetail is a guest with every child row, newest first.
type GuestDetail struct {
	Guest        models.Guest         `json:"guest"`
	Events       []models.GuestEvent  `json:"events"`
	Appointments []models.Appointment `json:"appointments"`
	Sales        []models.Sale        `json:"sales"`
	Reservations []models.Reservation `json:"reservations"`
}

// List returns guests by check-in date, latest first. A non-empty search
// keeps guests whose family name, room number or country contains it,
// ignoring case.
func (s *GuestService) List(ctx context.Context, search string) ([]models.Guest, error) {
	guests, err := s.store.Guests.Find(ctx, repositories.Query{
		Order: []repositories.Order{{Column: "check_in_date", Desc: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("guests: list: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return guests, nil
	}
	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.FamilyName), search) ||
			strings.Contains(strings.ToLower(g.RoomNumber), search) ||
			strings.Contains(strings.ToLower(g.Country), search) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *GuestService) Get(ctx context.Context, id string) (*models.Guest, error) {
	g, err := s.store.Guests.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("guests: get %s: %w", id, err)
	}
	return g, nil
}

// Detail loads the guest and then its four child lists concurrently.
func (s *GuestService) Detail(ctx context.Context, id string) (*GuestDetail, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &GuestDetail{Guest: *g}
	byGuest := []repositories.Filter{repositories.Eq("guest_id", id)}

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		detail.Events, err = s.store.Events.Find(gctx, repositories.Query{
			Filters: byGuest,
			Order:   []repositories.Order{{Column: "event_date", Desc: true}},
		})
		return err
	})
	eg.Go(func() (err error) {
		detail.Appointments, err = s.store.Appointments.Find(gctx, repositories.Query{
			Filters: byGuest,
			Order:   []repositories.Order{{Column: "appointment_date", Desc: true}},
		})
		return err
	})
	eg.Go(func() (err error) {
		detail.Sales, err = s.store.Sales.Find(gctx, repositories.Query{
			Filters: byGuest,
			Order:   []repositories.Order{{Column: "created_at", Desc: true}},
		})
		return err
	})
	eg.Go(func() (err error) {
		detail.Reservations, err = s.store.Reservations.Find(gctx, repositories.Query{
			Filters: byGuest,
			Order:   []repositories.Order{{Column: "reservation_date", Desc: true}},
		})
		return err
	})
	if err := eg.Wait(); err != nil {
		config.Log.Error("guest detail fetch failed", zap.String("guest_id", id), zap.Error(err))
		return nil, fmt.Errorf("guests: detail %s: %w", id, err)
	}
	return detail, nil
}

func (s *GuestService) Create(ctx context.Context, g *models.Guest) error {
	if err := validation.ValidateGuest(*g).Err(); err != nil {
		return err
	}
	g.ID = ""
	normalizeStay(g)
	if err := s.store.Guests.Create(ctx, g); err != nil {
		config.Log.Error("guest create failed", zap.String("family_name", g.FamilyName), zap.Error(err))
		return fmt.Errorf("guests: create: %w", err)
	}
	config.Log.Info("guest created", zap.String("guest_id", g.ID), zap.String("room", g.RoomNumber))
	return nil
}

// Update replaces every editable field of the guest.
func (s *GuestService) Update(ctx context.Context, id string, in models.Guest) (*models.Guest, error) {
	if err := validation.ValidateGuest(in).Err(); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	normalizeStay(&in)
	if err := s.store.Guests.Save(ctx, &in); err != nil {
		config.Log.Error("guest update failed", zap.String("guest_id", id), zap.Error(err))
		return nil, fmt.Errorf("guests: update %s: %w", id, err)
	}
	return &in, nil
}

// Delete removes the guest row only; child rows are left in place.
func (s *GuestService) Delete(ctx context.Context, id string) error {
	if err := s.store.Guests.Delete(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("guests: delete %s: %w", id, err)
	}
	config.Log.Info("guest deleted", zap.String("guest_id", id))
	return nil
}

func normalizeStay(g *models.Guest) {
	normalizeDate(&g.CheckInDate)
	normalizeOptionalDate(&g.CheckOutDate)
}

// guestNames fetches the id -> family name projection.
func guestNames(ctx context.Context, repo repositories.Repository[models.Guest]) ([]models.GuestName, error) {
	rows, err := repo.Find(ctx, repositories.Query{Select: []string{"id", "family_name"}})
	if err != nil {
		return nil, err
	}
	names := make([]models.GuestName, 0, len(rows))
	for _, r := range rows {
		names = append(names, models.GuestName{ID: r.ID, FamilyName: r.FamilyName})
	}
	return names, nil
}
