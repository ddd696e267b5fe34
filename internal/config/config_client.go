package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
	DefaultClientLogLevel       = "warn"
)

// Client holds the settings of the command-line client. It is populated from
// environment variables only.
type Client struct {
	// ServerAddress is the base URL of the notes server. A bare "host:port"
	// is accepted and treated as http.
	// Env: NOTES_SERVER
	ServerAddress string `env:"SERVER"`

	// RoutePrefix must match the server's SERVER_ROUTE_PREFIX.
	// Env: NOTES_ROUTE_PREFIX
	RoutePrefix string `env:"ROUTE_PREFIX"`

	// Token is the bearer token printed by the login command.
	// Env: NOTES_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every call made by the client.
	// Env: NOTES_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is the minimal level written to stderr.
	// Env: NOTES_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig reads NOTES_* variables and fills unset fields with
// defaults.
func GetClientConfig() (*Client, error) {
	cfg := &Client{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		LogLevel:       DefaultClientLogLevel,
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "NOTES_"}); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	return cfg, nil
}
