// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps the size of a decoded request body.
const maxBodyBytes = 1 << 20

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetOwnerFromContext(r.Context())

	notes, err := h.notes.List(r.Context(), owner, r.URL.Query().Get("keyword"))
	if err != nil {
		h.writeError(w, r, "*Handler.listNotes", err)
		return
	}

	h.writeJSON(w, r, models.NotesResponse{Notes: notes}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req models.NoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}

	owner, _ := utils.GetOwnerFromContext(r.Context())
	note, err := h.notes.Create(r.Context(), owner, req)
	if err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}

	h.writeJSON(w, r, models.NoteResponse{Note: note}, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req models.NoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	owner, _ := utils.GetOwnerFromContext(r.Context())
	note, err := h.notes.Update(r.Context(), owner, chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	h.writeJSON(w, r, models.NoteResponse{Note: note}, http.StatusOK)
}

func (h *Handler) setPinned(w http.ResponseWriter, r *http.Request) {
	var req models.PinRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.setPinned", err)
		return
	}

	owner, _ := utils.GetOwnerFromContext(r.Context())
	note, err := h.notes.SetPinned(r.Context(), owner, chi.URLParam(r, "id"), req.IsPinned)
	if err != nil {
		h.writeError(w, r, "*Handler.setPinned", err)
		return
	}

	h.writeJSON(w, r, models.NoteResponse{Note: note}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetOwnerFromContext(r.Context())

	note, err := h.notes.Delete(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	h.writeJSON(w, r, models.NoteResponse{Note: note}, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
