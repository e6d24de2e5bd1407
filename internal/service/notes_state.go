// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// State is a snapshot of [NotesStore]. It shares no memory with the store.
type State struct {
	// Notes is nil until the first successful load and after a reset.
	// A loaded empty list is non-nil.
	Notes []models.Note

	// IsLoading is true while at least one load is in flight.
	IsLoading bool

	// IsMutating is true while at least one create, update or pin is in
	// flight.
	IsMutating bool

	// SearchQuery is the keyword the next load filters by.
	SearchQuery string
}

// Loaded reports whether the list has been fetched.
func (s State) Loaded() bool {
	return s.Notes != nil
}

// Find returns the note with the given id.
func (s State) Find(id string) (models.Note, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// sortPinnedFirst moves pinned notes ahead of unpinned ones and keeps the
// server order inside each group.
func sortPinnedFirst(notes []models.Note) {
	slices.SortStableFunc(notes, func(a, b models.Note) int {
		switch {
		case a.IsPinned == b.IsPinned:
			return 0
		case a.IsPinned:
			return -1
		default:
			return 1
		}
	})
}

func cloneNotes(notes []models.Note) []models.Note {
	if notes == nil {
		return nil
	}
	out := make([]models.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

func replaceByID(notes []models.Note, id string, note models.Note) {
	for i := range notes {
		if notes[i].ID == id {
			notes[i] = note
		}
	}
}

func removeByID(notes []models.Note, id string) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
