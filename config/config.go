package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// DefaultAddressBookPath is the data file used when ADDRESS_BOOK_PATH is
// not set. It is resolved against the working directory.
const DefaultAddressBookPath = "address_book.json"

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Address book storage
	Storage StorageConfig

	// Feature Flags
	Features *FeatureFlags

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string

	// Timezone that defines "today" for birthday queries (default: Local)
	Timezone string
	Location *time.Location
}

// StorageConfig holds settings of the address book file.
type StorageConfig struct {
	// Path of the JSON data file
	Path string

	// Permission bits for newly written files
	FileMode os.FileMode
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
	LogFile   string // empty = stderr
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	var err error
	cfg.App, err = loadAppConfig()
	if err != nil {
		return nil, fmt.Errorf("app config: %w", err)
	}

	cfg.Storage, err = loadStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("storage config: %w", err)
	}

	cfg.Features = LoadFeatureFlags()
	cfg.Observability = loadObservabilityConfig(cfg.App.Debug)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() (AppConfig, error) {
	env := Environment(getEnv("APP_ENV", string(EnvDevelopment)))
	timezone := getEnv("APP_TIMEZONE", "Local")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return AppConfig{}, fmt.Errorf("APP_TIMEZONE %q: %w", timezone, err)
	}

	return AppConfig{
		Name:        getEnv("APP_NAME", "assistant-bot"),
		Environment: env,
		Debug:       getEnvBool("APP_DEBUG", false),
		Version:     getEnv("APP_VERSION", "0.1.0"),
		Timezone:    timezone,
		Location:    loc,
	}, nil
}

func loadStorageConfig() (StorageConfig, error) {
	mode := getEnv("ADDRESS_BOOK_FILE_MODE", "0644")
	perm, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		return StorageConfig{}, fmt.Errorf("ADDRESS_BOOK_FILE_MODE %q: %w", mode, err)
	}

	return StorageConfig{
		Path:     getEnv("ADDRESS_BOOK_PATH", DefaultAddressBookPath),
		FileMode: os.FileMode(perm),
	}, nil
}

func loadObservabilityConfig(debug bool) ObservabilityConfig {
	defaults := logger.DefaultOptions()
	level := getEnv("LOG_LEVEL", defaults.Level)
	if debug {
		level = "debug"
	}
	return ObservabilityConfig{
		LogLevel:  level,
		LogFormat: getEnv("LOG_FORMAT", defaults.Format),
		LogFile:   getEnv("LOG_FILE", ""),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Storage.Path) == "" {
		errs = append(errs, "ADDRESS_BOOK_PATH must not be empty")
	}

	if c.Storage.FileMode&0o600 != 0o600 {
		errs = append(errs, "ADDRESS_BOOK_FILE_MODE must allow owner read and write")
	}

	if _, ok := logger.ParseLevel(c.Observability.LogLevel); !ok {
		errs = append(errs, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Observability.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, "LOG_FORMAT must be text or json")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// LoggerOptions converts the observability settings for pkg/logger.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  c.Observability.LogLevel,
		Format: c.Observability.LogFormat,
		File:   c.Observability.LogFile,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
