// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// notes API.
//
// The primary abstraction is [NotesAdapter], which decouples the service
// layer from HTTP. The package ships a REST implementation built on resty
// ([NewHTTPNotesAdapter]).
//
// Every non-2xx response is mapped to an [*APIError] carrying the status code
// and the first message of the API's error payload. APIError unwraps to the
// status sentinels in errors.go, so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401). [MessageOf] turns any error into the text shown
// to the user.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter defines communication with the notes collection resource.
// Implementations attach the current bearer token to every request and map
// failures to [*APIError].
type NotesAdapter interface {
	// ListNotes fetches the notes matching keyword. An empty keyword means no
	// filter. The server's order is preserved.
	ListNotes(ctx context.Context, keyword string) ([]models.Note, error)

	// CreateNote creates a note and returns the server's copy of it.
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)

	// UpdateNote replaces title, description and tags of the note id and
	// returns the server's copy.
	UpdateNote(ctx context.Context, id string, req models.NoteRequest) (models.Note, error)

	// SetPinned changes only the pin flag of the note id and returns the
	// server's copy.
	SetPinned(ctx context.Context, id string, pinned bool) (models.Note, error)

	// DeleteNote deletes the note id. The response body is ignored.
	DeleteNote(ctx context.Context, id string) error
}

// TokenSource supplies the bearer token for outgoing requests. It is read
// on every request so a login or logout takes effect immediately.
type TokenSource interface {
	Token() string
}
