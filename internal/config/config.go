// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// StructuredConfig is the merged server configuration. Nested structs read
// their variables under the envPrefix of the field that holds them, so
// App.TokenSignKey comes from APP_TOKEN_SIGN_KEY.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`

	// JSONFilePath names an optional JSON file merged on top of env and
	// flags (CONFIG, -c, -config).
	JSONFilePath string `env:"CONFIG"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App configures token issuing, password hashing and logging.
type App struct {
	// ServiceName is the logger role and the "iss" claim of issued tokens.
	ServiceName string `env:"SERVICE_NAME"`

	// TokenSignKey is the HMAC secret. It has no default.
	TokenSignKey       string        `env:"TOKEN_SIGN_KEY"`
	TokenSignAlgorithm string        `env:"TOKEN_SIGN_ALGORITHM"` // HS256, HS384 or HS512
	TokenDuration      time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used at registration.
	PasswordHashCost int    `env:"PASSWORD_HASH_COST"`
	LogLevel         string `env:"LOG_LEVEL"`
}

// Server configures the HTTP listener.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RoutePrefix is mounted in front of /auth and /notes, never /health.
	RoutePrefix string `env:"ROUTE_PREFIX"`

	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB selects the database. postgres:// URLs and key=value strings open
// PostgreSQL through pgx; "file:", "sqlite://" and ":memory:" open SQLite.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig builds the server configuration. Sources are applied
// in this order, each overriding the non-zero fields of the previous ones:
// the .env file, the environment, command-line flags and the JSON file named
// by CONFIG or -c. Remaining zero fields get their defaults and the result is
// validated.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(flag.CommandLine, os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
