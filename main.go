package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"guest-admin/config"
	"guest-admin/controllers"
	"guest-admin/middleware"
	"guest-admin/repositories"
	"guest-admin/routes"
	"guest-admin/services"
	"guest-admin/utils"
)

func main() {
	envLoaded := config.LoadEnvFile()
	settings := config.Load()

	if err := config.InitLogger(settings.IsProduction()); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer config.SyncLogger()

	if !envLoaded {
		config.SLog.Infof(".env not found; using process environment (APP_ENV=%s, PORT=%s)", settings.Env, settings.Port)
	}

	// Both connection secrets are required; there is nothing to serve without them.
	if err := settings.Validate(); err != nil {
		config.Log.Fatal("missing required configuration", zap.Error(err))
	}

	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterBindingValidators(); err != nil {
		config.Log.Fatal("register binding validators", zap.Error(err))
	}

	db, err := config.ConnectDatabase(settings, nil)
	if err != nil {
		config.Log.Fatal("database connect failed", zap.Error(err))
	}
	config.Log.Info("database connected and migrated")

	store := repositories.NewStore(db)

	guestService := services.NewGuestService(store)
	eventService := services.NewEventService(store)
	appointmentService := services.NewAppointmentService(store)
	saleService := services.NewSaleService(store)
	reservationService := services.NewReservationService(store)
	settingsService := services.NewSettingsService(db, settings.DefaultSalesGoal)
	calendarService := services.NewCalendarService(store, appointmentService, reservationService, eventService)
	dashboardService := services.NewDashboardService(store, settingsService)

	rdb := config.NewRedisClient(settings)
	if rdb != nil {
		defer rdb.Close()
		config.Log.Info("response cache enabled", zap.String("redis", settings.RedisAddr), zap.Duration("ttl", settings.CacheTTL))
	}
	cache := middleware.NewResponseCache(rdb, "guest-admin", settings.CacheTTL)

	router := routes.SetupRouter(routes.Controllers{
		Guests:       controllers.NewGuestController(guestService),
		Events:       controllers.NewEventController(eventService),
		Appointments: controllers.NewAppointmentController(appointmentService),
		Sales:        controllers.NewSaleController(saleService),
		Reservations: controllers.NewReservationController(reservationService),
		Calendar:     controllers.NewCalendarController(calendarService),
		Dashboard:    controllers.NewDashboardController(dashboardService, settingsService),
	}, settings.CORSOrigins, cache)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		config.Log.Info("server starting", zap.String("addr", addr), zap.String("env", settings.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	config.Log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Log.Error("forced shutdown", zap.Error(err))
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	config.Log.Info("server stopped")
}
