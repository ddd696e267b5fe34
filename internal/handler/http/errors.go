// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-notes/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or has no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrUnknownTokenSubject is returned when a valid token names a user
	// that no longer exists.
	ErrUnknownTokenSubject = errors.New("token subject does not exist")
)

// Response details written in {"detail": "..."} bodies.
const (
	detailNotAuthenticated    = app.MsgNotAuthenticated
	detailInvalidToken        = app.MsgInvalidToken
	detailInvalidCredentials  = app.MsgInvalidCredentials
	detailUsernameTaken       = app.MsgUsernameTaken
	detailInvalidJSON         = app.MsgInvalidJSON
	detailInvalidQuery        = app.MsgInvalidPagination
	detailInternalServerError = app.MsgInternalServerError
	detailNoteNotFoundFormat  = app.MsgNoteNotFoundFormat

	wwwAuthenticateHeader       = "WWW-Authenticate"
	wwwAuthenticateBearerScheme = "Bearer"
)
