// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// Page size bounds for ListNotes. Callers that omit the limit use
// DefaultListLimit.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type noteService struct {
	noteRepository store.NoteRepository
	now            func() time.Time
	logger         *logger.Logger
}

// NewNoteService returns a NoteService backed by noteRepository. It performs
// no input validation; wrap it with NewNoteValidationService for that.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// timestamp returns the current time in the precision stored by both
// database dialects.
func (n *noteService) timestamp() time.Time {
	return n.now().UTC().Truncate(time.Microsecond)
}

func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	now := n.timestamp()
	note.NoteID = 0
	note.CreatedAt = now
	note.UpdatedAt = now

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("note_id", created.NoteID).
		Int64("user_id", created.UserID).
		Msg("note created")

	return created, nil
}

// ListNotes returns a page of the owner's notes ordered by id. Limits above
// MaxListLimit are clamped.
func (n *noteService) ListNotes(ctx context.Context, request models.ListNotesRequest) ([]models.Note, error) {
	if request.Limit > MaxListLimit {
		request.Limit = MaxListLimit
	}

	notes, err := n.noteRepository.ListNotes(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("notes listing failed: %w", err)
	}

	return notes, nil
}

func (n *noteService) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	note, err := n.noteRepository.GetNote(ctx, noteID, userID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	return note, nil
}

// UpdateNote applies the fields present in update to the owner's note. The
// new updated_at is always strictly later than the stored one.
func (n *noteService) UpdateNote(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error) {
	existing, err := n.noteRepository.GetNote(ctx, noteID, userID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup before update failed: %w", err)
	}

	updatedAt := n.timestamp()
	if !updatedAt.After(existing.UpdatedAt) {
		updatedAt = existing.UpdatedAt.Add(time.Microsecond)
	}
	existing.UpdatedAt = updatedAt

	updated, err := n.noteRepository.UpdateNote(ctx, existing, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (n *noteService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	if _, err := n.noteRepository.GetNote(ctx, noteID, userID); err != nil {
		return fmt.Errorf("note lookup before delete failed: %w", err)
	}

	if err := n.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		return fmt.Errorf("note deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("note_id", noteID).
		Int64("user_id", userID).
		Msg("note deleted")

	return nil
}
