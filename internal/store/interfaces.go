// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state in a local SQLite database.
//
// The only state the notes client keeps between runs is the login session:
// notes themselves are always fetched from the remote API.
package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository stores at most one login session.
type SessionRepository interface {
	// Save replaces the stored session with session.
	Save(ctx context.Context, session models.Session) error

	// Load returns the stored session or [ErrSessionNotFound].
	Load(ctx context.Context) (models.Session, error)

	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
