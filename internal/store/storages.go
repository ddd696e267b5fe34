package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Storages groups every repository of the service.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}
}

// NewConnectDB opens the database addressed by cfg.DSN. SQLite is selected
// for "file:", "sqlite://" and ":memory:" DSNs, PostgreSQL for
// "postgres://" and "postgresql://" URLs and key=value strings.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case IsSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}
