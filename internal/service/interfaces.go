// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side business logic of the notes
// client.
//
// [NotesStore] holds the in-memory list of notes and the in-flight flags and
// keeps them in sync with the remote notes API. [SessionBinder] ties the
// store's lifecycle to the login session: a login loads the list, a logout
// clears it.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/auth"
)

// AuthProvider is the login signal the notes lifecycle follows. The bearer
// token itself reaches the API through [adapter.TokenSource].
type AuthProvider interface {
	LoggedIn() bool
	Subscribe() (<-chan auth.Event, func())
}

// NotesLifecycle is the part of [NotesStore] driven by the session.
type NotesLifecycle interface {
	Load(ctx context.Context)
	Reset()
}
