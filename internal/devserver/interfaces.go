// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver holds the backend of the local notes API used for
// development and end-to-end tests.
//
// [NotesBackend] is the storage contract the HTTP handlers talk to.
// [MemoryNotes] keeps the notes in memory, separated per owner. Data is lost
// when the process exits.
package devserver

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesBackend stores the notes of every owner. owner is the authenticated
// principal of the request and must not be empty.
type NotesBackend interface {
	// List returns the owner's notes in creation order. A non-empty keyword
	// keeps only notes whose title, description or one of the tags contains
	// it, ignoring case.
	List(ctx context.Context, owner, keyword string) ([]models.Note, error)

	// Create stores a new unpinned note and returns it with its generated id.
	Create(ctx context.Context, owner string, req models.NoteRequest) (models.Note, error)

	// Update replaces title, description and tags of the note id. The pin
	// flag is left as is.
	Update(ctx context.Context, owner, id string, req models.NoteRequest) (models.Note, error)

	// SetPinned changes only the pin flag of the note id.
	SetPinned(ctx context.Context, owner, id string, pinned bool) (models.Note, error)

	// Delete removes the note id and returns the removed note.
	Delete(ctx context.Context, owner, id string) (models.Note, error)
}
