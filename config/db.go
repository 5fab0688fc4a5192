package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"guest-admin/models"
)

// mysqlDSNFromURL turns mysql://user@host:port/db?opts into a driver DSN.
func mysqlDSNFromURL(u *url.URL, password string) (string, error) {
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for k, v := range u.Query() {
		if len(v) > 0 {
			cfg.Params[k] = v[0]
		}
	}
	return cfg.FormatDSN(), nil
}

func postgresDSNFromURL(u *url.URL, password string) string {
	copied := *u
	copied.User = url.UserPassword(u.User.Username(), password)
	q := copied.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
	}
	copied.RawQuery = q.Encode()
	return copied.String()
}

// Dialector picks the gorm driver from the DATABASE_URL scheme.
func Dialector(rawURL, password string) (gorm.Dialector, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mysql":
		dsn, err := mysqlDSNFromURL(u, password)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(postgresDSNFromURL(u, password)), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

// ConnectDatabase opens the database, migrates every table and seeds the
// dashboard settings row.
func ConnectDatabase(s *Settings, dialector gorm.Dialector) (*gorm.DB, error) {
	if dialector == nil {
		var err error
		dialector, err = Dialector(s.DatabaseURL, s.DatabasePassword)
		if err != nil {
			return nil, err
		}
	}

	level := logger.Info
	if s.IsProduction() {
		level = logger.Warn
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !s.IsProduction(),
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(models.Tables()...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	if err := SeedDatabase(db, s.DefaultSalesGoal); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedDatabase makes sure the dashboard settings row exists.
func SeedDatabase(db *gorm.DB, salesGoal float64) error {
	var setting models.DashboardSetting
	err := db.First(&setting).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load dashboard settings: %w", err)
	}

	if salesGoal <= 0 {
		salesGoal = models.DefaultSalesGoal
	}
	setting = models.DashboardSetting{SalesGoal: salesGoal}
	if err := db.Create(&setting).Error; err != nil {
		return fmt.Errorf("seed dashboard settings: %w", err)
	}
	Log.Info("dashboard settings seeded", zap.Float64("sales_goal", salesGoal))
	return nil
}
