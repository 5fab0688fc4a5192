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

type DashboardService struct {
	store    repositories.Store
	settings *SettingsService
}

func NewDashboardService(store repositories.Store, settings *SettingsService) *DashboardService {
	return &DashboardService{store: store, settings: settings}
}

// Summary computes the KPIs as of now. A goal of zero or less means the
// stored sales goal.
func (s *DashboardService) Summary(ctx context.Context, now time.Time, goal float64) (reports.DashboardSummary, error) {
	if goal <= 0 {
		stored, err := s.settings.SalesGoal(ctx)
		if err != nil {
			return reports.DashboardSummary{}, err
		}
		goal = stored
	}

	monthStart := reports.MonthStart(now)
	var (
		sales        []models.Sale
		guests       []models.Guest
		appointments []models.Appointment
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		sales, err = s.store.Sales.Find(gctx, repositories.Query{})
		return err
	})
	eg.Go(func() (err error) {
		guests, err = s.store.Guests.Find(gctx, repositories.Query{
			Filters: []repositories.Filter{repositories.Gte("created_at", monthStart)},
		})
		return err
	})
	eg.Go(func() (err error) {
		appointments, err = s.store.Appointments.Find(gctx, repositories.Query{
			Filters: []repositories.Filter{repositories.Gte("created_at", monthStart)},
		})
		return err
	})
	if err := eg.Wait(); err != nil {
		config.Log.Error("dashboard fetch failed", zap.Error(err))
		return reports.DashboardSummary{}, fmt.Errorf("dashboard: %w", err)
	}

	return reports.BuildDashboard(sales, guests, appointments, goal), nil
}
