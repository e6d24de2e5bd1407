// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/devserver"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type Handler struct {
	notes devserver.NotesBackend

	// token, when non-empty, is the only accepted bearer token.
	token   string
	version string
	now     func() time.Time

	logger *logger.Logger
}

func NewHandler(notes devserver.NotesBackend, token, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		notes:   notes,
		token:   token,
		version: version,
		now:     time.Now,
		logger:  logger,
	}
}
