package service

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

// NewServices builds every service over the given storages. The note service
// is wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService: NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
	}
}
