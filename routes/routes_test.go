package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guest-admin/controllers"
	"guest-admin/middleware"
	"guest-admin/models"
	"guest-admin/repositories"
	"guest-admin/services"
	"guest-admin/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterBindingValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  []map[string]string `json:"errors"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, repositories.Store) {
	t.Helper()

	dsn := fmt.Sprintf("file:routes_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.Tables()...))

	store := repositories.NewStore(db)
	events := services.NewEventService(store)
	appointments := services.NewAppointmentService(store)
	reservations := services.NewReservationService(store)
	settings := services.NewSettingsService(db, 20000)

	r := SetupRouter(Controllers{
		Guests:       controllers.NewGuestController(services.NewGuestService(store)),
		Events:       controllers.NewEventController(events),
		Appointments: controllers.NewAppointmentController(appointments),
		Sales:        controllers.NewSaleController(services.NewSaleService(store)),
		Reservations: controllers.NewReservationController(reservations),
		Calendar:     controllers.NewCalendarController(services.NewCalendarService(store, appointments, reservations, events)),
		Dashboard:    controllers.NewDashboardController(services.NewDashboardService(store, settings), settings),
	}, nil, middleware.NewResponseCache(nil, "test", 0))
	return r, store
}

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func guestBody(family string) map[string]any {
	return map[string]any{
		"family_name":   family,
		"room_number":   "305",
		"pax":           2,
		"country":       "Germany",
		"agency":        "Nordsee Reisen",
		"nights":        7,
		"check_in_date": "2024-09-02",
	}
}

func createGuest(t *testing.T, r http.Handler, family string) models.Guest {
	t.Helper()
	rr := doJSONRequest(r, http.MethodPost, "/api/guests", guestBody(family))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var g models.Guest
	decode(t, rr, &g)
	return g
}

func TestHealth(t *testing.T) {
	r, _ := setupTestRouter(t)
	rr := doJSONRequest(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGuestLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t)

	g := createGuest(t, r, "Weber")
	assert.NotEmpty(t, g.ID)

	rr := doJSONRequest(r, http.MethodGet, "/api/guests?q=web", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []models.Guest
	decode(t, rr, &list)
	require.Len(t, list, 1)

	body := guestBody("Weber")
	body["room_number"] = "306"
	rr = doJSONRequest(r, http.MethodPut, "/api/guests/"+g.ID, body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSONRequest(r, http.MethodGet, "/api/guests/"+g.ID+"/detail", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var detail services.GuestDetail
	decode(t, rr, &detail)
	assert.Equal(t, "306", detail.Guest.RoomNumber)

	rr = doJSONRequest(r, http.MethodDelete, "/api/guests/"+g.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/guests/"+g.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGuestValidationFailureReturns422(t *testing.T) {
	r, store := setupTestRouter(t)

	body := guestBody("Weber")
	body["pax"] = 25
	rr := doJSONRequest(r, http.MethodPost, "/api/guests", body)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	env := decode(t, rr, nil)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "validation failed", env.Message)
	assert.Contains(t, env.Errors, map[string]string{
		"field":   "Number of guests",
		"message": "Number of guests cannot exceed 20",
	})

	guests, err := store.Guests.Find(context.Background(), repositories.Query{})
	require.NoError(t, err)
	assert.Empty(t, guests)
}

func TestMalformedBodyReturns400(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/guests", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChildForMissingGuestReturns404(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/guests/nobody/appointments", map[string]any{
		"appointment_date": "2024-09-03",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEventDefaultsToAccess(t *testing.T) {
	r, _ := setupTestRouter(t)
	g := createGuest(t, r, "Weber")

	rr := doJSONRequest(r, http.MethodPost, "/api/guests/"+g.ID+"/events", map[string]any{
		"event_name": "Flamenco night",
		"event_date": "2024-09-04",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var e models.GuestEvent
	decode(t, rr, &e)
	assert.True(t, e.HasAccess)

	rr = doJSONRequest(r, http.MethodPatch, "/api/events/"+e.ID+"/attendance", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &e)
	assert.True(t, e.Attended)
}

func TestCalendarFlowSyncsSale(t *testing.T) {
	r, _ := setupTestRouter(t)
	g := createGuest(t, r, "Weber")

	rr := doJSONRequest(r, http.MethodPost, "/api/guests/"+g.ID+"/appointments", map[string]any{
		"appointment_date": "2024-09-10",
		"appointment_time": "09:00",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var a models.Appointment
	decode(t, rr, &a)

	rr = doJSONRequest(r, http.MethodPost, "/api/guests/"+g.ID+"/reservations", map[string]any{
		"venue_name":       "El Puerto",
		"reservation_date": "2024-09-10",
		"reservation_time": "08:30",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSONRequest(r, http.MethodGet, "/api/calendar?year=2024&month=9", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var month struct {
		DaysInMonth int `json:"days_in_month"`
		Days        []struct {
			Items []struct {
				Type      string `json:"type"`
				Time      string `json:"time"`
				GuestName string `json:"guest_name"`
			} `json:"items"`
		} `json:"days"`
	}
	decode(t, rr, &month)
	assert.Equal(t, 30, month.DaysInMonth)
	items := month.Days[9].Items
	require.Len(t, items, 2)
	assert.Equal(t, "08:30", items[0].Time)
	assert.Equal(t, "Weber", items[1].GuestName)

	rr = doJSONRequest(r, http.MethodPatch, "/api/calendar/items/appointment/"+a.ID, map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSONRequest(r, http.MethodGet, "/api/guests/"+g.ID+"/sales", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var sales []models.Sale
	decode(t, rr, &sales)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].AttendedPresentation)

	rr = doJSONRequest(r, http.MethodPatch, "/api/calendar/items/meeting/"+a.ID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodPatch, "/api/calendar/items/appointment/"+a.ID, map[string]any{"time": "9am"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/calendar?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDashboardAndSettings(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var setting models.DashboardSetting
	decode(t, rr, &setting)
	assert.Equal(t, 20000.0, setting.SalesGoal)

	rr = doJSONRequest(r, http.MethodPut, "/api/settings", map[string]any{"sales_goal": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = doJSONRequest(r, http.MethodPut, "/api/settings", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodPut, "/api/settings", map[string]any{"sales_goal": 30000})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var summary struct {
		KPIs struct {
			SalesGoal      float64 `json:"sales_goal"`
			GoalCompletion float64 `json:"goal_completion"`
		} `json:"kpis"`
		WeeklySales []any `json:"weekly_sales"`
	}
	decode(t, rr, &summary)
	assert.Equal(t, 30000.0, summary.KPIs.SalesGoal)
	assert.Equal(t, 0.0, summary.KPIs.GoalCompletion)
	assert.Empty(t, summary.WeeklySales)

	rr = doJSONRequest(r, http.MethodGet, "/api/dashboard?as_of=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/validate/sale", map[string]any{"made_purchase": false})
	require.Equal(t, http.StatusOK, rr.Code)
	var result struct {
		IsValid bool  `json:"is_valid"`
		Errors  []any `json:"errors"`
	}
	decode(t, rr, &result)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)

	rr = doJSONRequest(r, http.MethodPost, "/api/validate/appointment", map[string]any{
		"title":            "Presentation",
		"appointment_date": "2024-09-10",
		"appointment_time": "25:00",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &result)
	assert.False(t, result.IsValid)

	rr = doJSONRequest(r, http.MethodPost, "/api/validate/invoice", map[string]any{})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
