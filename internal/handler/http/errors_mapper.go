package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
)

// errorResponse describes how a sentinel error is rendered. An empty detail
// means the validator message is used.
type errorResponse struct {
	target    error
	status    int
	detail    string
	challenge bool
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: store.ErrUsernameAlreadyExists, status: http.StatusBadRequest, detail: detailUsernameTaken},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, detail: detailInvalidCredentials, challenge: true},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, detail: detailInvalidToken, challenge: true},
	{target: ErrUnknownTokenSubject, status: http.StatusUnauthorized, detail: detailInvalidToken, challenge: true},
	{target: store.ErrNoUserWasFound, status: http.StatusUnauthorized, detail: detailInvalidToken, challenge: true},
	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, detail: detailNotAuthenticated, challenge: true},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, detail: detailNotAuthenticated, challenge: true},
	{target: ErrEmptyToken, status: http.StatusUnauthorized, detail: detailNotAuthenticated, challenge: true},
	{target: store.ErrNoteNotFound, status: http.StatusNotFound, detail: http.StatusText(http.StatusNotFound)},
}

// validationErrors are the messages exposed to clients for a 400.
var validationErrors = []error{
	validators.ErrInvalidUsername,
	validators.ErrInvalidPassword,
	validators.ErrEmptyTitle,
	validators.ErrTitleTooLong,
	validators.ErrInvalidNoteID,
	validators.ErrInvalidUserID,
}

func lookupError(err error) (errorResponse, bool) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp, true
		}
	}
	return errorResponse{}, false
}

func statusFromError(err error) int {
	if resp, ok := lookupError(err); ok {
		return resp.status
	}
	return http.StatusInternalServerError
}

func validationDetail(err error) string {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return service.ErrInvalidDataProvided.Error()
}

// writeError renders err as a {"detail": ...} response. Unknown errors become
// an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	resp, ok := lookupError(err)
	if !ok {
		writeDetail(w, http.StatusInternalServerError, detailInternalServerError)
		return
	}

	detail := resp.detail
	if detail == "" {
		detail = validationDetail(err)
	}
	if resp.challenge {
		w.Header().Set(wwwAuthenticateHeader, wwwAuthenticateBearerScheme)
	}
	writeDetail(w, resp.status, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	utils.WriteError(w, status, detail)
}
