// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, ErrUnknownTokenSubject)
		return
	}

	var body models.NoteCreate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, detailInvalidJSON)
		return
	}

	note := models.Note{Body: body.Body, UserID: user.UserID}
	if body.Title != nil {
		note.Title = *body.Title
	}

	created, err := h.services.NoteService.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("note creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, ErrUnknownTokenSubject)
		return
	}

	skip, err := parseQueryUint(r, "skip", 0)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, detailInvalidQuery)
		return
	}
	limit, err := parseQueryUint(r, "limit", service.DefaultListLimit)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, detailInvalidQuery)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, models.ListNotesRequest{
		UserID: user.UserID,
		Offset: skip,
		Limit:  limit,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("notes listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, noteID, ok := noteRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, noteID, user.UserID)
	if err != nil {
		h.writeNoteError(w, r, noteID, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, noteID, ok := noteRequest(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		writeDetail(w, http.StatusBadRequest, detailInvalidJSON)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, noteID, user.UserID, update)
	if err != nil {
		h.writeNoteError(w, r, noteID, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	user, noteID, ok := noteRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID, user.UserID); err != nil {
		h.writeNoteError(w, r, noteID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteRequest resolves the caller and the {id} URL parameter. An id that is
// not a positive integer cannot name a note and yields 404.
func noteRequest(w http.ResponseWriter, r *http.Request) (*models.User, int64, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, ErrUnknownTokenSubject)
		return nil, 0, false
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || noteID <= 0 {
		writeDetail(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return nil, 0, false
	}

	return user, noteID, true
}

func (h *Handler) writeNoteError(w http.ResponseWriter, r *http.Request, noteID int64, err error) {
	if errors.Is(err, store.ErrNoteNotFound) {
		writeDetail(w, http.StatusNotFound, fmt.Sprintf(detailNoteNotFoundFormat, noteID))
		return
	}

	logger.FromRequest(r).Err(err).Int64("note_id", noteID).Msg("note request failed")
	writeError(w, err)
}

// parseQueryUint reads a non-negative integer query parameter, returning def
// when it is absent.
func parseQueryUint(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	// 63 bits keeps the value inside the signed range SQL OFFSET/LIMIT accept
	return strconv.ParseUint(raw, 10, 63)
}
