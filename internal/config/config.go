// Package config holds engine policy values supplied by the environment.
// The computation engine never hardcodes thresholds; everything tunable
// lives here and is passed down explicitly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"wakala/internal/core/types"
)

// Engine groups the policy values the derived-aggregate services consume.
type Engine struct {
	// Aging buckets for debt classification, in days since last activity.
	AgingNewDays     int
	AgingActiveDays  int
	AgingOverdueDays int

	// LowStockThreshold marks an item level as critical (bundles on hand).
	LowStockThreshold int64

	// ReminderThreshold is the minimum base-currency debt that triggers a
	// stale-debt alert.
	ReminderThreshold types.Money

	// Default exchange rates used only when the rate history is empty.
	DefaultSARRate types.Money
	DefaultOMRRate types.Money
}

// DefaultEngine returns the thresholds the agency ran with historically.
func DefaultEngine() Engine {
	return Engine{
		AgingNewDays:      3,
		AgingActiveDays:   15,
		AgingOverdueDays:  30,
		LowStockThreshold: 5,
		ReminderThreshold: types.NewMoneyFromInt(100_000),
		DefaultSARRate:    types.NewMoneyFromInt(430),
		DefaultOMRRate:    types.NewMoneyFromInt(425),
	}
}

// HTTP holds server settings.
type HTTP struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Config is the full service configuration.
type Config struct {
	Env         string // development, production
	LogLevel    string
	DatabaseURL string
	HTTP        HTTP
	Engine      Engine
}

// FromEnv loads configuration from environment variables, applying defaults
// for everything except the database URL.
func FromEnv() (Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, fmt.Errorf("required environment variable DATABASE_URL not set")
	}

	eng := DefaultEngine()
	eng.AgingNewDays = getEnvInt("AGING_NEW_DAYS", eng.AgingNewDays)
	eng.AgingActiveDays = getEnvInt("AGING_ACTIVE_DAYS", eng.AgingActiveDays)
	eng.AgingOverdueDays = getEnvInt("AGING_OVERDUE_DAYS", eng.AgingOverdueDays)
	eng.LowStockThreshold = int64(getEnvInt("LOW_STOCK_THRESHOLD", int(eng.LowStockThreshold)))
	if v := os.Getenv("DEBT_REMINDER_THRESHOLD"); v != "" {
		m, err := types.NewMoneyFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse DEBT_REMINDER_THRESHOLD: %w", err)
		}
		eng.ReminderThreshold = m
	}
	if v := os.Getenv("DEFAULT_SAR_RATE"); v != "" {
		m, err := types.NewMoneyFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse DEFAULT_SAR_RATE: %w", err)
		}
		eng.DefaultSARRate = m
	}
	if v := os.Getenv("DEFAULT_OMR_RATE"); v != "" {
		m, err := types.NewMoneyFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse DEFAULT_OMR_RATE: %w", err)
		}
		eng.DefaultOMRRate = m
	}

	return Config{
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: dsn,
		HTTP: HTTP{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Engine: eng,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
