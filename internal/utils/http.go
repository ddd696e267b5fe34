package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes/models"
)

// internalErrorBody is written when a response value cannot be encoded.
var internalErrorBody = []byte(`{"detail":"internal server error"}`)

// WriteJSON encodes data and writes it with statusCode and a JSON content
// type. It returns the number of body bytes written.
//
// If data cannot be encoded, a 500 with a generic detail body is written
// instead and the encoding error is returned, so handlers never emit a
// half-written document.
//
//	WriteJSON(w, note, http.StatusCreated)
//	WriteJSON(w, []models.Note{}, http.StatusOK) // "[]"
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, encodeErr := json.Marshal(data)
	if encodeErr != nil {
		body = internalErrorBody
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	n, err := w.Write(body)

	if encodeErr != nil {
		return n, fmt.Errorf("error encoding response body: %w", encodeErr)
	}
	return n, err
}

// WriteError writes a {"detail": "..."} JSON body with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, detail string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
