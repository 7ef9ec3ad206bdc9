// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// Loads a .env file from the working directory, when one exists, before
	// Load reads the environment. Variables already set are not overridden.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// AppEnv names the deployment environment. Defaults to "production".
	// "development" adds stack traces to 500 responses.
	AppEnv string

	// StrictErrors maps not-found and constraint failures to 404 and 409 on
	// every operation instead of the default 500.
	StrictErrors bool

	// MaxBodyBytes caps request bodies. Zero or negative disables the cap.
	MaxBodyBytes int64

	// MigrateOnStart applies the embedded migrations before serving.
	MigrateOnStart bool
}

// Development reports whether the server runs in development mode.
func (c Config) Development() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Load reads configuration from environment variables and returns a Config.
// Returns one error listing every required variable that is not set and
// every value that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		AppEnv:   getEnv("APP_ENV", "production"),
	}

	var problems []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}

	var err error
	if cfg.StrictErrors, err = getBool("STRICT_ERRORS", false); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START", false); err != nil {
		problems = append(problems, err.Error())
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %q is not a boolean", key, v)
	}
	return b, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}
