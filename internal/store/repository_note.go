// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table. Every statement carries a user_id predicate.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.NoteID,
		&note.Title,
		&note.Body,
		&note.UserID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	return note, err
}

// CreateNote inserts note and returns it with the server-assigned NoteID.
// Timestamps are expected to be set by the caller.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = n.QueryRowContext(ctx, query, args...).Scan(&note.NoteID); err != nil {
		if n.classify(err) == ForeignKeyViolation {
			log.Debug().Int64("user_id", note.UserID).Msg("note owner no longer exists")
			return models.Note{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Int64("note_id", note.NoteID).
		Int64("user_id", note.UserID).
		Str("title", note.Title).
		Msg("note created")

	return note, nil
}

// ListNotes returns a page of the owner's notes ordered by id. The result is
// never nil.
func (n *noteRepository) ListNotes(ctx context.Context, request models.ListNotesRequest) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.buildListNotesQuery(request)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", request.UserID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, request.Limit)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotes").
				Int64("user_id", request.UserID).
				Int("iteration", len(notes)).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNote returns the note identified by noteID if it belongs to userID,
// otherwise [ErrNoteNotFound].
func (n *noteRepository) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.buildGetNoteQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNote applies the fields present in update to the note identified by
// note.NoteID and note.UserID, sets updated_at to note.UpdatedAt and returns
// the stored result.
func (n *noteRepository) UpdateNote(ctx context.Context, note models.Note, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.buildUpdateNoteQuery(note, update)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", note.NoteID).
			Int64("user_id", note.UserID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	log.Info().
		Int64("note_id", note.NoteID).
		Strs("fields", update.Fields()).
		Msg("note updated")

	return n.GetNote(ctx, note.NoteID, note.UserID)
}

// DeleteNote removes the note identified by noteID if it belongs to userID.
// Returns [ErrNoteNotFound] when nothing was deleted.
func (n *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := n.buildDeleteNoteQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	log.Info().Int64("note_id", noteID).Msg("note deleted")

	return nil
}
