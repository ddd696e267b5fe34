// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "header.payload.signature"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.Client{ServerAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func newAuthedTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := newTestAdapter(t, serverURL)
	a.SetToken(testToken)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeDetail(t *testing.T, w http.ResponseWriter, status int, detail string) {
	writeJSON(t, w, status, models.ErrorResponse{Detail: detail})
}

func assertBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func strPtr(s string) *string { return &s }

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Client{ServerAddress: "  "}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server address")
}

func TestNewHTTPServerAdapter_PreloadsToken(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.Client{ServerAddress: "localhost:8080", Token: " tok "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok", a.Token())
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		body := readBody(t, r)
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "secret123", body["password"])

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 7, Username: "alice", CreatedAt: created})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.Credentials{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Empty(t, a.Token(), "register must not log the user in")
}

func TestRegister_UsernameTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusBadRequest, app.MsgUsernameTaken)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), app.MsgUsernameTaken)
}

func TestRegister_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusInternalServerError, app.MsgInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		writeJSON(t, w, http.StatusOK, models.TokenResponse{AccessToken: testToken, TokenType: models.TokenTypeBearer})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, testToken, got.AccessToken)
	assert.Equal(t, models.TokenTypeBearer, got.TokenType)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusUnauthorized, app.MsgInvalidCredentials)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), app.MsgInvalidCredentials)
	assert.Empty(t, a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TokenResponse{TokenType: models.TokenTypeBearer})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── Notes ───────────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes/", r.URL.Path)
		assertBearer(t, r)

		body := readBody(t, r)
		assert.Equal(t, "Groceries", body["title"])
		assert.Nil(t, body["body"])

		writeJSON(t, w, http.StatusCreated, models.Note{NoteID: 1, Title: "Groceries"})
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	got, err := a.CreateNote(context.Background(), models.NoteCreate{Title: strPtr("Groceries")})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.NoteID)
	assert.Equal(t, "Groceries", got.Title)
	assert.Nil(t, got.Body)
}

func TestCreateNote_WithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateNote(context.Background(), models.NoteCreate{Title: strPtr("x")})

	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called)
}

func TestCreateNote_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusBadRequest, "title: must not be empty")
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	_, err := a.CreateNote(context.Background(), models.NoteCreate{Title: strPtr("")})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestListNotes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notes/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("skip"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assertBearer(t, r)

		writeJSON(t, w, http.StatusOK, []models.Note{
			{NoteID: 6, Title: "six"},
			{NoteID: 7, Title: "seven", Body: strPtr("body")},
		})
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	got, err := a.ListNotes(context.Background(), 5, 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(6), got[0].NoteID)
	require.NotNil(t, got[1].Body)
	assert.Equal(t, "body", *got[1].Body)
}

func TestListNotes_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Note{})
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	got, err := a.ListNotes(context.Background(), 100, 10)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListNotes_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(t, w, http.StatusUnauthorized, app.MsgInvalidToken)
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	_, err := a.ListNotes(context.Background(), 0, 10)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notes/42", r.URL.Path)
		assertBearer(t, r)

		writeJSON(t, w, http.StatusOK, models.Note{NoteID: 42, Title: "answer"})
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	got, err := a.GetNote(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.NoteID)
}

func TestGetNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusNotFound, fmt.Sprintf(app.MsgNoteNotFoundFormat, 42))
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	_, err := a.GetNote(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), fmt.Sprintf(app.MsgNoteNotFoundFormat, 42))
}

func TestUpdateNote_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notes/3", r.URL.Path)
		assertBearer(t, r)

		body := readBody(t, r)
		_, hasTitle := body["title"]
		assert.False(t, hasTitle)
		bodyValue, hasBody := body["body"]
		assert.True(t, hasBody)
		assert.Nil(t, bodyValue)

		writeJSON(t, w, http.StatusOK, models.Note{NoteID: 3, Title: "kept"})
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	got, err := a.UpdateNote(context.Background(), 3, models.NoteUpdate{Body: models.OptionalString{Set: true}})

	require.NoError(t, err)
	assert.Equal(t, "kept", got.Title)
	assert.Nil(t, got.Body)
}

func TestUpdateNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusNotFound, fmt.Sprintf(app.MsgNoteNotFoundFormat, 3))
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	_, err := a.UpdateNote(context.Background(), 3, models.NoteUpdate{Title: models.NewOptionalString("x")})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/notes/9", r.URL.Path)
		assertBearer(t, r)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteNote(context.Background(), 9))
}

func TestDeleteNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusNotFound, fmt.Sprintf(app.MsgNoteNotFoundFormat, 9))
	}))
	defer srv.Close()

	a := newAuthedTestAdapter(t, srv.URL)
	assert.ErrorIs(t, a.DeleteNote(context.Background(), 9), ErrNotFound)
}

// ── Route prefix and health ─────────────────────────────────────────────────

func TestRoutePrefix_AppliedToAPIButNotHealth(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/health":
			writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "ok"})
		default:
			writeJSON(t, w, http.StatusOK, models.Note{NoteID: 1})
		}
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.Client{ServerAddress: srv.URL, RoutePrefix: "api/v1/", Token: testToken}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Health(context.Background()))
	_, err = a.GetNote(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"/health", "/api/v1/notes/1"}, paths)
}

func TestHealth_Unexpected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "degraded"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.Error(t, a.Health(context.Background()))
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainBodyAndUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/plain":
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte("nope"))
		case "/empty":
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	resp, err := a.client.R().Get("/plain")
	require.NoError(t, err)
	mapped := mapHTTPError(resp)
	assert.ErrorIs(t, mapped, ErrMethodNotAllowed)
	assert.Contains(t, mapped.Error(), "nope")

	resp, err = a.client.R().Get("/empty")
	require.NoError(t, err)
	mapped = mapHTTPError(resp)
	require.Error(t, mapped)
	assert.Contains(t, mapped.Error(), "http 418")
	assert.Contains(t, mapped.Error(), http.StatusText(http.StatusTeapot))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeRoutePrefix(t *testing.T) {
	assert.Equal(t, "", normalizeRoutePrefix(""))
	assert.Equal(t, "", normalizeRoutePrefix("/"))
	assert.Equal(t, "/api", normalizeRoutePrefix("api"))
	assert.Equal(t, "/api/v1", normalizeRoutePrefix("/api/v1/"))
}
