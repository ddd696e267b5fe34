// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes server and CLI.
//
// Server code logs JSON to stdout via [NewLogger]. Request handlers obtain a
// logger enriched with the request's trace_id through [FromRequest] or
// [FromContext]; the CLI uses [NewClientLogger], which writes human-readable
// lines to stderr.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function's name in the "func" field.
// level sets the global minimum level (see [ParseLevel]).
func NewLogger(role, level string) *Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewClientLogger returns a console logger writing to w, normally os.Stderr,
// so log lines never mix with the JSON the CLI prints on stdout.
func NewClientLogger(role, level string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))

	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case) into a
// zerolog level. Empty or unknown input yields info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest returns the logger stored in r's context by the trace-id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When none is attached,
// zerolog's default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
