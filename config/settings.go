package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingDatabaseURL      = errors.New("DATABASE_URL is not set")
	ErrMissingDatabasePassword = errors.New("DATABASE_PASSWORD is not set")
)

type Settings struct {
	Env  string
	Port string

	// Both connection secrets are required; startup stops without them.
	DatabaseURL      string
	DatabasePassword string

	CORSOrigins      []string
	DefaultSalesGoal float64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheEnabled  bool
	CacheTTL      time.Duration
}

// LoadEnvFile loads .env if present. A missing file is not an error.
func LoadEnvFile() bool {
	return godotenv.Load() == nil
}

// Load reads settings from the environment.
func Load() *Settings {
	return &Settings{
		Env:              EnvOrDefault("APP_ENV", "development"),
		Port:             EnvOrDefault("PORT", "8080"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabasePassword: os.Getenv("DATABASE_PASSWORD"),
		CORSOrigins:      parseList(os.Getenv("CORS_ORIGINS")),
		DefaultSalesGoal: parseFloat(os.Getenv("SALES_GOAL"), 25000),
		RedisAddr:        redisAddr(),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          parseInt(os.Getenv("REDIS_DB"), 0),
		CacheEnabled:     EnvOrDefault("CACHE_ENABLED", "true") == "true",
		CacheTTL:         parseDur(EnvOrDefault("CACHE_TTL", "30s"), 30*time.Second),
	}
}

// Validate reports missing required settings.
func (s *Settings) Validate() error {
	var errs []error
	if s.DatabaseURL == "" {
		errs = append(errs, ErrMissingDatabaseURL)
	}
	if s.DatabasePassword == "" {
		errs = append(errs, ErrMissingDatabasePassword)
	}
	return errors.Join(errs...)
}

func (s *Settings) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	if host != "" && port != "" {
		return host + ":" + port
	}
	return os.Getenv("REDIS_ADDR")
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
