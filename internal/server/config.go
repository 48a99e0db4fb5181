package server

import (
	"os"
	"strconv"
	"time"
)

// Auth modes selectable through AUTH_MODE
const (
	AuthModeMock     = "mock"
	AuthModeDatabase = "database"
	AuthModeRemote   = "remote"
)

// Config represents the configuration for the HTTP server
type Config struct {
	// Address the server listens on
	Addr string
	// Which authentication service backs the session: mock, database or remote
	AuthMode string
	// Base URL of the remote authentication API (remote mode only)
	RemoteAuthURL string
	// Secret used to sign learner JWTs (database mode)
	JWTSecret string
	// How long issued tokens stay valid
	TokenTTL time.Duration
	// Settle delay of the simulated authentication service
	MockDelay time.Duration
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		Addr:      ":8080",
		AuthMode:  AuthModeMock,
		JWTSecret: "dev-secret-change-me",
		TokenTTL:  24 * time.Hour,
		MockDelay: time.Second,
	}
}

// FromEnv returns the default configuration overridden by environment
// variables: PORT, AUTH_MODE, AUTH_REMOTE_URL, JWT_SECRET, MOCK_AUTH_DELAY_MS.
func FromEnv() *Config {
	cfg := DefaultConfig()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if mode := os.Getenv("AUTH_MODE"); mode != "" {
		cfg.AuthMode = mode
	}
	if url := os.Getenv("AUTH_REMOTE_URL"); url != "" {
		cfg.RemoteAuthURL = url
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if ms := os.Getenv("MOCK_AUTH_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 {
			cfg.MockDelay = time.Duration(v) * time.Millisecond
		}
	}
	return cfg
}
