// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Note is a personal text note. Every note has exactly one owner and is only
// reachable through queries scoped by that owner's identifier.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID int64 `json:"id"`

	// Title is the required note title, at most 255 characters.
	Title string `json:"title"`

	// Body is the optional free-text content. A nil Body is serialized as null.
	Body *string `json:"body"`

	// UserID references the owner. It is never exposed via JSON.
	UserID int64 `json:"-"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is set at creation and refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteCreate is the request body of POST /notes/.
type NoteCreate struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// NoteUpdate is the request body of PUT /notes/{id}.
// Only fields present in the JSON document are applied.
type NoteUpdate struct {
	Title OptionalString `json:"title,omitzero"`
	Body  OptionalString `json:"body,omitzero"`
}

// Fields returns the JSON names of the fields present in the update.
func (u NoteUpdate) Fields() []string {
	fields := make([]string, 0, 2)
	if u.Title.Set {
		fields = append(fields, "title")
	}
	if u.Body.Set {
		fields = append(fields, "body")
	}
	return fields
}

// OptionalString distinguishes a JSON key that is absent from one that is
// explicitly set to null.
//
//	{}              -> Set == false
//	{"body": null}  -> Set == true,  Value == nil
//	{"body": "x"}   -> Set == true,  Value == &"x"
type OptionalString struct {
	Set   bool
	Value *string
}

// NewOptionalString returns an OptionalString that is set to v.
func NewOptionalString(v string) OptionalString {
	return OptionalString{Set: true, Value: &v}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked by
// encoding/json when the key is present in the document.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// ListNotesRequest carries owner-scoped pagination parameters.
type ListNotesRequest struct {
	UserID int64
	Offset uint64
	Limit  uint64
}
