package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock/servicemock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestInit_Health(t *testing.T) {
	router := newTestHandler().Init()

	rr := serve(router, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_NotesRequireAuth(t *testing.T) {
	router := newTestHandler().Init()

	routes := []struct{ method, target string }{
		{http.MethodPost, "/notes/"},
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes/"},
		{http.MethodGet, "/notes"},
		{http.MethodGet, "/notes/1"},
		{http.MethodPut, "/notes/1"},
		{http.MethodDelete, "/notes/1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			rr := serve(router, rt.method, rt.target)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestInit_UnknownRouteAndMethod(t *testing.T) {
	router := newTestHandler().Init()

	rr := serve(router, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decodeDetail(t, rr))

	rr = serve(router, http.MethodGet, "/auth/login")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method Not Allowed", decodeDetail(t, rr))
}

func TestInit_RoutePrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := servicemock.NewMockAuthService(ctrl)
	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	h := NewHandler(&service.Services{AuthService: authSvc}, config.Server{RoutePrefix: "/api/v1/"}, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Body = http.NoBody
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	// empty body is rejected before the service is reached
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"a","password":"b"}`)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// unprefixed API routes are gone, health stays at the root
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/auth/login").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health").Code)
	require.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/v1/health").Code)
}
