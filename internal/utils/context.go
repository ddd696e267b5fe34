// Package utils holds small helpers shared by the server layers: bcrypt
// password hashing, JWT issue/verify, JSON response writers, trace ids and
// typed request-context accessors for the authenticated user.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// contextKey keeps request-context keys of this package from colliding with
// plain string keys set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return "notes context key " + string(c)
}

var (
	// UserCtxKey holds the *models.User resolved by the auth middleware.
	UserCtxKey = contextKey("user")

	// UserIDCtxKey holds the same user's id as int64.
	UserIDCtxKey = contextKey("userID")
)

// WithUser returns a copy of ctx carrying both the user and its identifier.
// A nil user leaves ctx unchanged.
func WithUser(ctx context.Context, user *models.User) context.Context {
	if user == nil {
		return ctx
	}
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return context.WithValue(ctx, UserIDCtxKey, user.UserID)
}

// GetUserFromContext returns the authenticated user stored by WithUser.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	return user, ok && user != nil
}

// GetUserIDFromContext returns the authenticated user's id stored by WithUser.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
