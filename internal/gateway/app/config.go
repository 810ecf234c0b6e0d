package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrMissingSecret is returned when no token signing secret is configured.
var ErrMissingSecret = errors.New("GATEWAY_SECRET_KEY is required")

type Config struct {
	SecretKey string // Required: HMAC secret for signing access tokens
	Issuer    string // Optional: issuer claim for tokens (default: darkgate)

	DatabaseFile    string        // Optional: path to SQLite database file (default: ./gateway.db)
	RedisAddr       string        // Optional: redis address for the replay cache; empty selects the in-process cache
	UpstreamBaseURL string        // Optional: override for the upstream AI service root
	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 1h)
	ReplayTTL       time.Duration // Optional: request identifier retention window (default: 60s)
	MaxSkew         time.Duration // Optional: allowed clock skew for signed requests (default: 30s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 5000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		SecretKey: os.Getenv("GATEWAY_SECRET_KEY"),
		Issuer:    getEnvOrDefault("GATEWAY_ISSUER", "darkgate"),

		DatabaseFile:    getEnvOrDefault("GATEWAY_DATABASE_FILE", "gateway.db"),
		RedisAddr:       os.Getenv("GATEWAY_REDIS_ADDR"),
		UpstreamBaseURL: os.Getenv("GATEWAY_UPSTREAM_BASE_URL"),
		AccessTokenTTL:  getEnvDurationOrDefault("GATEWAY_ACCESS_TOKEN_TTL", time.Hour),
		ReplayTTL:       getEnvDurationOrDefault("GATEWAY_REPLAY_TTL", 60*time.Second),
		MaxSkew:         getEnvDurationOrDefault("GATEWAY_MAX_SKEW", 30*time.Second),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate checks the hard requirements before the application starts.
func (c Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecret
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
