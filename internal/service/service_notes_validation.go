package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// NoteValidationService validates requests before handing them to the
// wrapped NoteService. Every validation failure is wrapped with
// ErrInvalidDataProvided.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, request models.ListNotesRequest) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListNotes(ctx, request)
}

func (v *NoteValidationService) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	if err := v.validateIDs(ctx, noteID, userID); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, noteID, userID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error) {
	if err := v.validateIDs(ctx, noteID, userID); err != nil {
		return models.Note{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, noteID, userID, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	if err := v.validateIDs(ctx, noteID, userID); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, noteID, userID)
}

func (v *NoteValidationService) validateIDs(ctx context.Context, noteID, userID int64) error {
	note := models.Note{NoteID: noteID, UserID: userID}
	if err := v.validator.Validate(ctx, note, validators.FieldNoteID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
