package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guest-admin/models"
	"guest-admin/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:services_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.Tables()...))
	return db
}

func setupTestStore(t *testing.T) repositories.Store {
	t.Helper()
	return repositories.NewStore(setupTestDB(t))
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func newGuest(family, room, checkIn string) models.Guest {
	return models.Guest{
		FamilyName:  family,
		RoomNumber:  room,
		Pax:         2,
		Country:     "Portugal",
		Agency:      "Sol Travel",
		Nights:      5,
		CheckInDate: checkIn,
	}
}

func seedGuest(t *testing.T, store repositories.Store, family, room, checkIn string) models.Guest {
	t.Helper()
	g := newGuest(family, room, checkIn)
	require.NoError(t, store.Guests.Create(context.Background(), &g))
	return g
}
