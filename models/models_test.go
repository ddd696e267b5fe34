package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims_GetUserID(t *testing.T) {
	tests := []struct {
		subject string
		want    int64
		wantErr bool
	}{
		{subject: "42", want: 42},
		{subject: "9223372036854775807", want: 9223372036854775807},
		{subject: "", wantErr: true},
		{subject: "alice", wantErr: true},
		{subject: "4.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: tt.subject}}

			got, err := c.GetUserID()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := (&Claims{}).GetUserID()
	assert.ErrorIs(t, err, ErrNoSubject)
}

func TestNoteUpdate_Decode(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantTitle OptionalString
		wantBody  OptionalString
		fields    []string
	}{
		{name: "empty object", doc: `{}`, fields: []string{}},
		{
			name:      "title only",
			doc:       `{"title":"new"}`,
			wantTitle: NewOptionalString("new"),
			fields:    []string{"title"},
		},
		{
			name:     "explicit null body",
			doc:      `{"body":null}`,
			wantBody: OptionalString{Set: true},
			fields:   []string{"body"},
		},
		{
			name:      "both fields",
			doc:       `{"title":"t","body":""}`,
			wantTitle: NewOptionalString("t"),
			wantBody:  NewOptionalString(""),
			fields:    []string{"title", "body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u NoteUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &u))

			assert.Equal(t, tt.wantTitle, u.Title)
			assert.Equal(t, tt.wantBody, u.Body)
			assert.Equal(t, tt.fields, u.Fields())
		})
	}
}

func TestNoteUpdate_RejectsNonStringTitle(t *testing.T) {
	var u NoteUpdate
	assert.Error(t, json.Unmarshal([]byte(`{"title":5}`), &u))
}

func TestNoteUpdate_EncodeSkipsUnsetFields(t *testing.T) {
	b, err := json.Marshal(NoteUpdate{Body: OptionalString{Set: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"body":null}`, string(b))

	b, err = json.Marshal(NoteUpdate{Title: NewOptionalString("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x"}`, string(b))
}

func TestNote_JSONShape(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 6000, time.UTC)
	b, err := json.Marshal(Note{NoteID: 7, Title: "t", UserID: 99, CreatedAt: ts, UpdatedAt: ts})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"title": "t",
		"body": null,
		"created_at": "2026-01-02T03:04:05.000006Z",
		"updated_at": "2026-01-02T03:04:05.000006Z"
	}`, string(b))
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	b, err := json.Marshal(User{UserID: 1, Username: "alice", PasswordHash: "$2a$10$x"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "2a$10")
	assert.NotContains(t, string(b), "password")
}
