// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request through the
// request-scoped logger, so the line carries the trace_id set by withTraceID.
// 5xx responses are logged at error level, 4xx at warn, the rest at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		code := rec.statusCode()
		logger.FromRequest(r).WithLevel(accessLogLevel(code)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", code).
			Int("size", rec.written).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogLevel(code int) zerolog.Level {
	switch {
	case code >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case code >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// statusRecorder remembers the first status code sent and counts body bytes.
type statusRecorder struct {
	http.ResponseWriter

	code    int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.code != 0 {
		return
	}
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.code == 0 {
		s.WriteHeader(http.StatusOK)
	}
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// statusCode reports 200 when the handler never wrote anything.
func (s *statusRecorder) statusCode() int {
	if s.code == 0 {
		return http.StatusOK
	}
	return s.code
}
