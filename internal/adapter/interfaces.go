// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the notes API.
//
// [ServerAdapter] hides the REST surface behind plain Go calls. The package
// ships a resty-based implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The server's "detail" message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the notes server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every /notes request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login exchanges credentials for an access token. On success the token
	// is stored via SetToken and also returned to the caller.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// CreateNote creates a note owned by the token's user.
	CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error)

	// ListNotes returns one page of the caller's notes ordered by id.
	ListNotes(ctx context.Context, skip, limit uint64) ([]models.Note, error)

	// GetNote fetches a single note by id.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// UpdateNote applies a partial update. Only the fields set in update are
	// sent to the server.
	UpdateNote(ctx context.Context, noteID int64, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note permanently.
	DeleteNote(ctx context.Context, noteID int64) error

	// Health calls the liveness probe.
	Health(ctx context.Context) error
}
