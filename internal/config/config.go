// Package config handles application configuration management.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variable names.
const (
	EnvDBPath    = "KAZA_DB_PATH"
	EnvAddr      = "KAZA_ADDR"
	EnvLogLevel  = "KAZA_LOG_LEVEL"
	EnvPrayerURL = "PRAYER_API_URL"
	EnvPrayerKey = "PRAYER_API_KEY"
	EnvFile      = ".env"
)

const (
	DefaultAddr  = ":8080"
	DatabaseFile = "prayer_tracker.db"
	appDirName   = "kaza"
)

// Config holds all application configuration.
type Config struct {
	// SQLite database file
	DatabasePath string

	// HTTP API listen address
	ServerAddress string

	LogLevel zerolog.Level

	PrayerAPI PrayerAPIConfig
}

// PrayerAPIConfig holds the remote prayer-time feed settings.
type PrayerAPIConfig struct {
	URL    string
	APIKey string
}

// DefaultDatabasePath returns $XDG_DATA_HOME/kaza/prayer_tracker.db.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, appDirName, DatabaseFile)
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DatabasePath:  DefaultDatabasePath(),
		ServerAddress: DefaultAddr,
		LogLevel:      zerolog.InfoLevel,
	}
}

// Load reads configuration from environment variables. Values from a .env
// file in the working directory are applied first without overriding
// variables that are already set; a missing file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvDBPath); path != "" {
		cfg.DatabasePath = path
	}
	if addr := os.Getenv(EnvAddr); addr != "" {
		cfg.ServerAddress = addr
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		level, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	cfg.PrayerAPI.URL = os.Getenv(EnvPrayerURL)
	cfg.PrayerAPI.APIKey = os.Getenv(EnvPrayerKey)

	return cfg, nil
}
