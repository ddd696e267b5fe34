package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func doJSON(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, authSvc, _ := newMockedHandler(t)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	authSvc.EXPECT().
		RegisterUser(gomock.Any(), models.Credentials{Username: "alice", Password: "secret1"}).
		Return(models.User{UserID: 1, Username: "alice", PasswordHash: "$2a$...", CreatedAt: createdAt}, nil)

	rr := doJSON(h.register, http.MethodPost, "/auth/register", `{"username":"alice","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice","created_at":"2026-01-02T03:04:05Z"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "malformed JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantDetail: detailInvalidJSON,
		},
		{
			name:       "username taken",
			body:       `{"username":"alice","password":"secret1"}`,
			serviceErr: store.ErrUsernameAlreadyExists,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Username already registered",
		},
		{
			name:       "validation failure",
			body:       `{"username":"al","password":"secret1"}`,
			serviceErr: errors.Join(service.ErrInvalidDataProvided, validators.ErrInvalidUsername),
			wantStatus: http.StatusBadRequest,
			wantDetail: validators.ErrInvalidUsername.Error(),
		},
		{
			name:       "storage failure",
			body:       `{"username":"alice","password":"secret1"}`,
			serviceErr: store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantDetail: detailInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authSvc, _ := newMockedHandler(t)
			if tt.serviceErr != nil {
				authSvc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := doJSON(h.register, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, authSvc, _ := newMockedHandler(t)
	user := models.User{UserID: 1, Username: "alice"}

	gomock.InOrder(
		authSvc.EXPECT().Login(gomock.Any(), models.Credentials{Username: "alice", Password: "secret1"}).Return(user, nil),
		authSvc.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt", UserID: 1}, nil),
	)

	rr := doJSON(h.login, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, authSvc, _ := newMockedHandler(t)
	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	rr := doJSON(h.login, http.MethodPost, "/auth/login", `{"username":"alice","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Incorrect username or password", decodeDetail(t, rr))
}

func TestLogin_TokenFailure(t *testing.T) {
	h, authSvc, _ := newMockedHandler(t)
	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	authSvc.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := doJSON(h.login, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret1"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, detailInternalServerError, decodeDetail(t, rr))
}

func TestLogin_MalformedJSON(t *testing.T) {
	h, _, _ := newMockedHandler(t)

	rr := doJSON(h.login, http.MethodPost, "/auth/login", `not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, detailInvalidJSON, decodeDetail(t, rr))
}
