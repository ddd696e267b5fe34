package store

import (
	"context"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
)

const (
	sqliteMemoryDSN  = ":memory:"
	sqliteFilePrefix = "file:"
	sqliteURLPrefix  = "sqlite://"
)

// IsSQLiteDSN reports whether dsn addresses a SQLite database.
func IsSQLiteDSN(dsn string) bool {
	return dsn == sqliteMemoryDSN ||
		strings.HasPrefix(dsn, sqliteFilePrefix) ||
		strings.HasPrefix(dsn, sqliteURLPrefix)
}

// sqliteDriverDSN converts a user-facing DSN into the form expected by
// go-sqlite3 and enables foreign key enforcement.
func sqliteDriverDSN(dsn string) string {
	switch {
	case dsn == sqliteMemoryDSN:
		dsn = "file::memory:"
	case strings.HasPrefix(dsn, sqliteURLPrefix):
		dsn = sqliteFilePrefix + strings.TrimPrefix(dsn, sqliteURLPrefix)
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// sqlitePool keeps a single connection so an in-memory database lives as
// long as the returned DB.
var sqlitePool = poolSettings{maxOpen: 1, maxIdle: 1}

// NewConnectSQLite opens a SQLite database with foreign keys enforced.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	return connect(ctx, "sqlite3", sqliteDriverDSN(dsn), migrations.DialectSQLite, sqlitePool, NewSQLiteErrorClassifier(), log)
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return UnknownError
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	default:
		return UnknownError
	}
}
