// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serverEnvKeys lists every variable read by parseEnv.
var serverEnvKeys = []string{
	"CONFIG", "DOTENV",
	"APP_SERVICE_NAME", "APP_TOKEN_SIGN_KEY", "APP_TOKEN_SIGN_ALGORITHM",
	"APP_TOKEN_DURATION", "APP_PASSWORD_HASH_COST", "APP_LOG_LEVEL",
	"SERVER_ADDRESS", "SERVER_ROUTE_PREFIX", "SERVER_REQUEST_TIMEOUT",
	"STORAGE_DB_DATABASE_URI",
}

// clearEnvVars unsets every server variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range serverEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// setEnvVars starts from a clean environment and sets vars; everything is
// restored when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_EveryVariable(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                   "/etc/notes/config.json",
		"APP_SERVICE_NAME":         "Notes Env",
		"APP_TOKEN_SIGN_KEY":       "env-secret",
		"APP_TOKEN_SIGN_ALGORITHM": "HS384",
		"APP_TOKEN_DURATION":       "15m",
		"APP_PASSWORD_HASH_COST":   "11",
		"APP_LOG_LEVEL":            "error",
		"SERVER_ADDRESS":           ":9090",
		"SERVER_ROUTE_PREFIX":      "/api/v1",
		"SERVER_REQUEST_TIMEOUT":   "20s",
		"STORAGE_DB_DATABASE_URI":  "postgres://notes:notes@db:5432/notes",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{
		App: App{
			ServiceName:        "Notes Env",
			TokenSignKey:       "env-secret",
			TokenSignAlgorithm: "HS384",
			TokenDuration:      15 * time.Minute,
			PasswordHashCost:   11,
			LogLevel:           "error",
		},
		Storage: Storage{DB: DB{DSN: "postgres://notes:notes@db:5432/notes"}},
		Server: Server{
			HTTPAddress:    ":9090",
			RoutePrefix:    "/api/v1",
			RequestTimeout: 20 * time.Second,
		},
		JSONFilePath: "/etc/notes/config.json",
	}, cfg)
}

func TestParseEnv_UnsetVariablesStayZero(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DATABASE_URI": ":memory:"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{Storage: Storage{DB: DB{DSN: ":memory:"}}}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"APP_TOKEN_DURATION":     "half an hour",
		"APP_PASSWORD_HASH_COST": "twelve",
		"SERVER_REQUEST_TIMEOUT": "soon",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			setEnvVars(t, map[string]string{key: value})

			err := parseEnv(&StructuredConfig{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
