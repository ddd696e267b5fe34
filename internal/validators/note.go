// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes/models"
)

// Field name constants accepted by [NoteValidator].
const (
	FieldTitle  = "title"
	FieldUserID = "user_id"
	FieldNoteID = "note_id"
)

const MaxTitleLength = 255

type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the concrete request type. Supported values are
// [models.Note], [models.NoteUpdate] and [models.ListNotesRequest].
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.ListNotesRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListNotesRequest:
		return v.validateListRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(note.Title); err != nil {
				return err
			}
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if note.NoteID <= 0 {
				return ErrInvalidNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteUpdate checks only the fields present in the patch. A title,
// once present, must be a non-null valid title; a null body is allowed and
// clears the body. An empty patch is valid.
func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !update.Title.Set {
				continue
			}
			if update.Title.Value == nil {
				return ErrEmptyTitle
			}
			if err := validateTitle(*update.Title.Value); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateListRequest(_ context.Context, request models.ListNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
