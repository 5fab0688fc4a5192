package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"guest-admin/config"
	"guest-admin/models"
	"guest-admin/validation"
)

// SettingsService owns the single dashboard settings row.
type SettingsService struct {
	DB          *gorm.DB
	defaultGoal float64
}

func NewSettingsService(db *gorm.DB, defaultGoal float64) *SettingsService {
	if defaultGoal <= 0 {
		defaultGoal = models.DefaultSalesGoal
	}
	return &SettingsService{DB: db, defaultGoal: defaultGoal}
}

// Get returns the stored settings, creating the row on first use.
func (s *SettingsService) Get(ctx context.Context) (*models.DashboardSetting, error) {
	var setting models.DashboardSetting
	err := s.DB.WithContext(ctx).Order("id ASC").First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("settings: load: %w", err)
	}

	setting = models.DashboardSetting{SalesGoal: s.defaultGoal}
	if err := s.DB.WithContext(ctx).Create(&setting).Error; err != nil {
		return nil, fmt.Errorf("settings: create: %w", err)
	}
	return &setting, nil
}

func (s *SettingsService) SalesGoal(ctx context.Context) (float64, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return setting.SalesGoal, nil
}

func (s *SettingsService) UpdateSalesGoal(ctx context.Context, goal float64) (*models.DashboardSetting, error) {
	if err := validation.Validate(func() *validation.FieldError {
		return validation.PositiveNumber(goal, "Sales goal")
	}).Err(); err != nil {
		return nil, err
	}

	setting, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(setting).Update("sales_goal", goal).Error; err != nil {
		return nil, fmt.Errorf("settings: update sales goal: %w", err)
	}
	setting.SalesGoal = goal
	config.Log.Info("sales goal updated", zap.Float64("sales_goal", goal))
	return setting, nil
}
