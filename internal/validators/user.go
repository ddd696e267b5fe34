package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes/models"
)

// Field name constants accepted by [UserValidator].
const (
	// FieldUsername enforces the registration length rule (3 to 50 characters).
	FieldUsername = "username"

	// FieldPassword enforces the registration length rule (6 to 72 bytes,
	// the bcrypt input limit).
	FieldPassword = "password"

	// FieldLoginUsername only requires the username to be present.
	FieldLoginUsername = "login username"

	// FieldLoginPassword only requires the password to be present.
	FieldLoginPassword = "login password"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks [models.Credentials]. With no fields the registration
// rules are applied.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(creds.Username)
			if n < MinUsernameLength || n > MaxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldPassword:
			// bcrypt truncates at 72 bytes, so the upper bound is in bytes
			if utf8.RuneCountInString(creds.Password) < MinPasswordLength || len(creds.Password) > MaxPasswordLength {
				return ErrInvalidPassword
			}
		case FieldLoginUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
		case FieldLoginPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
