package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest-admin/models"
)

func amount(f float64) *float64 { return &f }

func TestWeekOfMonth(t *testing.T) {
	// May 2024 starts on a Wednesday.
	tests := []struct {
		date string
		want int
	}{
		{"2024-05-01", 1},
		{"2024-05-04", 1},
		{"2024-05-05", 2},
		{"2024-05-31", 5},
		// June 2024 starts on a Saturday.
		{"2024-06-01", 1},
		{"2024-06-02", 2},
		{"2024-06-30", 6},
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, WeekOfMonth(d), tt.date)
	}
}

func TestWeeklySalesSortedByWeek(t *testing.T) {
	sales := []models.Sale{
		{MadePurchase: true, PurchaseAmount: amount(300), PurchaseDate: strPtr("2024-05-20")},
		{MadePurchase: true, PurchaseAmount: amount(100), PurchaseDate: strPtr("2024-05-01")},
		{MadePurchase: true, PurchaseAmount: amount(50), PurchaseDate: strPtr("2024-05-02")},
		{MadePurchase: false, PurchaseAmount: amount(999), PurchaseDate: strPtr("2024-05-02")},
		{MadePurchase: true, PurchaseAmount: amount(70)},
		{MadePurchase: true, PurchaseAmount: amount(70), PurchaseDate: strPtr("bad")},
	}

	weeks := WeeklySales(sales)

	require.Len(t, weeks, 2)
	assert.Equal(t, WeekTotal{Week: 1, Name: "Week 1", Sales: 150}, weeks[0])
	assert.Equal(t, WeekTotal{Week: 4, Name: "Week 4", Sales: 300}, weeks[1])
}

func TestRatesGuardZeroDenominators(t *testing.T) {
	assert.Equal(t, 0.0, ConversionRate(3, 0))
	assert.Equal(t, 0.0, AttendanceRate(3, 0))
	assert.Equal(t, 0.0, GoalCompletion(100, 0))
	assert.Equal(t, 50.0, ConversionRate(1, 2))
	assert.Equal(t, 75.0, AttendanceRate(3, 4))
	assert.Equal(t, 10.0, GoalCompletion(2500, 25000))
}

func TestComputeKPIs(t *testing.T) {
	sales := []models.Sale{
		{AttendedPresentation: true, MadePurchase: true, PurchaseAmount: amount(5000), PurchaseDate: strPtr("2024-05-03")},
		{AttendedPresentation: true},
		{AttendedPresentation: false, MadePurchase: true, PurchaseAmount: amount(1000), PurchaseDate: strPtr("2024-05-10")},
	}
	guests := []models.Guest{{ID: "g1"}, {ID: "g2"}, {ID: "g3"}}
	appointments := []models.Appointment{
		{Title: "Sales Presentation", Status: models.AppointmentCompleted},
		{Title: "presentation", Status: models.AppointmentNoShow},
		{Title: "Spa tour", Status: models.AppointmentNoShow},
		{Title: "PRESENTATION 2", Status: models.AppointmentScheduled},
	}

	k := ComputeKPIs(sales, guests, appointments, 25000)

	assert.Equal(t, 6000.0, k.TotalSales)
	assert.Equal(t, 2, k.SalesCount)
	assert.Equal(t, 2, k.PresentationsAttended)
	assert.Equal(t, 3, k.PresentationsScheduled)
	assert.Equal(t, 2, k.NoShows)
	assert.Equal(t, 3, k.CouplesThisMonth)
	assert.Equal(t, 100.0, k.ConversionRate)
	assert.InDelta(t, 66.666, k.AttendanceRate, 0.01)
	assert.Equal(t, 24.0, k.GoalCompletion)
}

func TestBuildDashboardProgress(t *testing.T) {
	sales := []models.Sale{
		{MadePurchase: true, PurchaseAmount: amount(2500), PurchaseDate: strPtr("2024-05-01")},
	}
	d := BuildDashboard(sales, nil, nil, 10000)

	require.Len(t, d.GoalProgress, 1)
	assert.Equal(t, GoalProgress{Name: "Week 1", Progress: 25}, d.GoalProgress[0])
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2024, 5, 17, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), MonthStart(now))
}
