// Package config loads runtime knobs from the environment via a simple
// getEnv(key, fallback) lookup.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every env-var-overridable setting, plus a few adapter-only
// fields the core never reads but carries so an eventual HTTP adapter
// doesn't have to re-derive them.
type Config struct {
	// MaxPlayers and MinPlayers are loaded and logged at startup only; the
	// engine enforces its own fixed engine.MaxPlayers and engine.MinPlayers.
	MaxPlayers int
	MinPlayers int

	JWTSecret           string
	JWTExpirationHours  int
	RateLimitPerMinute  int

	InvitationDefaultTimeoutSeconds int
	InvitationMaxTimeoutSeconds     int

	// Adapter-only — unused by the core itself.
	ServerHost                 string
	ServerPort                 string
	CORSAllowedOrigins         string
	APIVersionDeprecationMonths int
}

func Load() Config {
	return Config{
		MaxPlayers: getEnvInt("MAX_PLAYERS", 10),
		MinPlayers: getEnvInt("MIN_PLAYERS", 1),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 10),

		InvitationDefaultTimeoutSeconds: getEnvInt("INVITATION_DEFAULT_TIMEOUT_SECONDS", 300),
		InvitationMaxTimeoutSeconds:     getEnvInt("INVITATION_MAX_TIMEOUT_SECONDS", 3600),

		ServerHost:                  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:                  getEnv("SERVER_PORT", "8080"),
		CORSAllowedOrigins:          getEnv("CORS_ALLOWED_ORIGINS", "*"),
		APIVersionDeprecationMonths: getEnvInt("API_VERSION_DEPRECATION_MONTHS", 6),
	}
}

// JWTExpiration is JWTExpirationHours as a time.Duration.
func (c Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

// SunsetDate computes the API deprecation sunset date as now plus
// APIVersionDeprecationMonths*30 days. The core never emits HTTP headers;
// it only supplies this computed value for an eventual adapter.
func (c Config) SunsetDate(now time.Time) time.Time {
	return now.AddDate(0, 0, c.APIVersionDeprecationMonths*30)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
