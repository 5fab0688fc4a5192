package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"guest-admin/models"
	"guest-admin/validation"
)

// WeekOfMonth numbers weeks from 1, with weeks starting on Sunday:
// floor((day + weekday of the 1st - 1) / 7) + 1.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := t.Day() + int(first.Weekday()) - 1
	return offset/7 + 1
}

type WeekTotal struct {
	Week  int     `json:"week"`
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// WeeklySales sums purchase amounts per week of month. Sales without a
// purchase or a parsable purchase date are ignored. Output is ordered by
// week number.
func WeeklySales(sales []models.Sale) []WeekTotal {
	byWeek := map[int]float64{}
	for _, s := range sales {
		if !s.MadePurchase || s.PurchaseDate == nil || *s.PurchaseDate == "" {
			continue
		}
		d, ok := validation.ParseDate(*s.PurchaseDate)
		if !ok {
			continue
		}
		byWeek[WeekOfMonth(d)] += s.Amount()
	}

	out := make([]WeekTotal, 0, len(byWeek))
	for week, total := range byWeek {
		out = append(out, WeekTotal{Week: week, Name: fmt.Sprintf("Week %d", week), Sales: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

type GoalProgress struct {
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

// WeeklyProgress expresses each week's total as a percentage of goal.
func WeeklyProgress(weeks []WeekTotal, goal float64) []GoalProgress {
	out := make([]GoalProgress, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, GoalProgress{Name: w.Name, Progress: percent(w.Sales, goal)})
	}
	return out
}

func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func ConversionRate(purchases, presentationsAttended int) float64 {
	return percent(float64(purchases), float64(presentationsAttended))
}

func AttendanceRate(presentationsAttended, presentationsScheduled int) float64 {
	return percent(float64(presentationsAttended), float64(presentationsScheduled))
}

func GoalCompletion(totalSales, goal float64) float64 {
	return percent(totalSales, goal)
}

type KPIs struct {
	TotalSales             float64 `json:"total_sales"`
	SalesCount             int     `json:"sales_count"`
	SalesGoal              float64 `json:"sales_goal"`
	GoalCompletion         float64 `json:"goal_completion"`
	CouplesThisMonth       int     `json:"couples_this_month"`
	ConversionRate         float64 `json:"conversion_rate"`
	PresentationsScheduled int     `json:"presentations_scheduled"`
	PresentationsAttended  int     `json:"presentations_attended"`
	NoShows                int     `json:"no_shows"`
	AttendanceRate         float64 `json:"attendance_rate"`
}

type DashboardSummary struct {
	KPIs         KPIs           `json:"kpis"`
	WeeklySales  []WeekTotal    `json:"weekly_sales"`
	GoalProgress []GoalProgress `json:"goal_progress"`
}

// ComputeKPIs derives the dashboard ratios. sales covers all time;
// guests and appointments are the ones created this month.
func ComputeKPIs(sales []models.Sale, guests []models.Guest, appointments []models.Appointment, goal float64) KPIs {
	var k KPIs
	k.SalesGoal = goal

	for _, s := range sales {
		if s.MadePurchase {
			k.TotalSales += s.Amount()
			k.SalesCount++
		}
		if s.AttendedPresentation {
			k.PresentationsAttended++
		}
	}

	for _, a := range appointments {
		if strings.Contains(strings.ToLower(a.Title), "presentation") {
			k.PresentationsScheduled++
		}
		if a.Status == models.AppointmentNoShow {
			k.NoShows++
		}
	}

	k.CouplesThisMonth = len(guests)
	k.ConversionRate = ConversionRate(k.SalesCount, k.PresentationsAttended)
	k.AttendanceRate = AttendanceRate(k.PresentationsAttended, k.PresentationsScheduled)
	k.GoalCompletion = GoalCompletion(k.TotalSales, goal)
	return k
}

func BuildDashboard(sales []models.Sale, guests []models.Guest, appointments []models.Appointment, goal float64) DashboardSummary {
	weeks := WeeklySales(sales)
	return DashboardSummary{
		KPIs:         ComputeKPIs(sales, guests, appointments, goal),
		WeeklySales:  weeks,
		GoalProgress: WeeklyProgress(weeks, goal),
	}
}

// MonthStart is midnight on the first of now's month.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
