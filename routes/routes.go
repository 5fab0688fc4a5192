package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"guest-admin/controllers"
	"guest-admin/middleware"
)

// Controllers groups every handler set the router mounts.
type Controllers struct {
	Guests       *controllers.GuestController
	Events       *controllers.EventController
	Appointments *controllers.AppointmentController
	Sales        *controllers.SaleController
	Reservations *controllers.ReservationController
	Calendar     *controllers.CalendarController
	Dashboard    *controllers.DashboardController
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter mounts the API. cache may be nil.
func SetupRouter(h Controllers, corsOrigins []string, cache *middleware.ResponseCache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(cache.InvalidateOnWrite())
	{
		guests := api.Group("/guests")
		{
			guests.GET("", h.Guests.GetGuests)
			guests.POST("", h.Guests.CreateGuest)
			guests.GET("/:id", h.Guests.GetGuest)
			guests.PUT("/:id", h.Guests.UpdateGuest)
			guests.DELETE("/:id", h.Guests.DeleteGuest)
			guests.GET("/:id/detail", h.Guests.GetGuestDetail)

			guests.GET("/:id/events", h.Events.GetGuestEvents)
			guests.POST("/:id/events", h.Events.CreateEvent)
			guests.GET("/:id/appointments", h.Appointments.GetGuestAppointments)
			guests.POST("/:id/appointments", h.Appointments.CreateAppointment)
			guests.GET("/:id/sales", h.Sales.GetGuestSales)
			guests.POST("/:id/sales", h.Sales.CreateSale)
			guests.GET("/:id/reservations", h.Reservations.GetGuestReservations)
			guests.POST("/:id/reservations", h.Reservations.CreateReservation)
		}

		events := api.Group("/events")
		{
			events.GET("/:id", h.Events.GetEvent)
			events.PUT("/:id", h.Events.UpdateEvent)
			events.PATCH("/:id/attendance", h.Events.ToggleAttendance)
			events.DELETE("/:id", h.Events.DeleteEvent)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("/:id", h.Appointments.GetAppointment)
			appointments.PUT("/:id", h.Appointments.UpdateAppointment)
			appointments.POST("/:id/cancel", h.Appointments.CancelAppointment)
			appointments.DELETE("/:id", h.Appointments.DeleteAppointment)
		}

		sales := api.Group("/sales")
		{
			sales.GET("/:id", h.Sales.GetSale)
			sales.PUT("/:id", h.Sales.UpdateSale)
			sales.DELETE("/:id", h.Sales.DeleteSale)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("/:id", h.Reservations.GetReservation)
			reservations.PUT("/:id", h.Reservations.UpdateReservation)
			reservations.DELETE("/:id", h.Reservations.DeleteReservation)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("", cache.Cache(), h.Calendar.GetMonth)
			calendar.PATCH("/items/:type/:id", h.Calendar.UpdateItem)
			calendar.DELETE("/items/:type/:id", h.Calendar.DeleteItem)
		}

		api.GET("/dashboard", cache.Cache(), h.Dashboard.GetSummary)
		api.GET("/settings", h.Dashboard.GetSettings)
		api.PUT("/settings", h.Dashboard.UpdateSettings)

		api.POST("/validate/:entity", controllers.ValidateEntity)
	}

	return r
}
