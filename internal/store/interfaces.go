package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository persists notes. Every method is scoped by the owner's
// user ID; a note owned by someone else behaves exactly like a missing one.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, request models.ListNotesRequest) ([]models.Note, error)
	GetNote(ctx context.Context, noteID, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int64) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
}
