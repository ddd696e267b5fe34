package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// AuthService manages user accounts and access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages notes on behalf of their owner. A note that belongs to
// another user is reported exactly like a missing one.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, request models.ListNotesRequest) ([]models.Note, error)
	GetNote(ctx context.Context, noteID, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int64) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
