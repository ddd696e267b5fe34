// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// notes HTTP handlers. Client-side tests use the same values to fake
// server responses.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies. Keeping them in one place ensures
// consistent wording on both sides of the API.
package app

const (
	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidToken is returned when the bearer token is expired, tampered
	// with, or names a user that no longer exists.
	MsgInvalidToken = "Could not validate credentials"

	// MsgInvalidCredentials is returned by login for both an unknown username
	// and a wrong password.
	MsgInvalidCredentials = "Incorrect username or password"

	// MsgUsernameTaken is returned when registering a username that exists.
	MsgUsernameTaken = "Username already registered"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidPagination is returned for negative or non-integer skip/limit.
	MsgInvalidPagination = "skip and limit must be non-negative integers"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoteNotFoundFormat is formatted with the requested note id.
	MsgNoteNotFoundFormat = "Note with id %d not found"
)
