package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
)

// ErrorKind is the result of classifying a driver error.
type ErrorKind int

const (
	// UnknownError is any error the classifier does not recognise.
	UnknownError ErrorKind = iota

	// UniqueViolation is a UNIQUE constraint violation.
	UniqueViolation

	// ForeignKeyViolation is a FOREIGN KEY constraint violation.
	ForeignKeyViolation
)

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// poolSettings configures the database/sql connection pool.
type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// connect opens driverDSN with driverName, applies pool and verifies the
// connection with a ping. The returned DB reports dialect and classifies
// driver errors with classifier.
func connect(ctx context.Context, driverName, driverDSN, dialect string, pool poolSettings,
	classifier ErrorClassificator, log *logger.Logger) (*DB, error) {
	dbLog := log.With().Str("driver", driverName).Str("dialect", dialect).Logger()

	conn, err := sql.Open(driverName, driverDSN)
	if err != nil {
		dbLog.Err(err).Msg("cannot open database")
		return nil, fmt.Errorf("error opening %s connection: %w", dialect, err)
	}

	conn.SetMaxOpenConns(pool.maxOpen)
	conn.SetMaxIdleConns(pool.maxIdle)
	conn.SetConnMaxLifetime(pool.maxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		dbLog.Err(err).Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	dbLog.Info().Msg("database connection established")

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		logger:             log,
		errorClassificator: classifier,
	}, nil
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder
// format of the connection dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// classify returns the kind of err, or UnknownError when the connection has
// no classifier.
func (db *DB) classify(err error) ErrorKind {
	if db.errorClassificator == nil {
		return UnknownError
	}
	return db.errorClassificator.Classify(err)
}
