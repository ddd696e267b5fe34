package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")

	ErrInvalidUsername = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword = errors.New("password must be between 6 and 72 characters")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")

	ErrEmptyTitle    = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title must be at most 255 characters")
	ErrInvalidNoteID = errors.New("invalid note ID")
)
