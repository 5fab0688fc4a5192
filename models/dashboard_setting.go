package models

import "time"

const DefaultSalesGoal = 25000.0

// DashboardSetting is a single-row table holding dashboard preferences.
type DashboardSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SalesGoal float64   `gorm:"column:sales_goal" json:"sales_goal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
