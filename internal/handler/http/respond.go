// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

// writeError logs err and answers with its status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	writeErrors(w, status, messageFromError(err))
}

// writeErrors answers with the API's error payload.
func writeErrors(w http.ResponseWriter, status int, msgs ...string) {
	resp := models.ErrorResponse{Errors: make([]models.ErrorItem, 0, len(msgs))}
	for _, msg := range msgs {
		resp.Errors = append(resp.Errors, models.ErrorItem{Msg: msg})
	}

	utils.WriteJSON(w, resp, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrors(w, http.StatusNotFound, app.MsgNotFound)
}
