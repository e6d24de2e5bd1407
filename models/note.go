// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a user-authored record owned by the remote notes API.
//
// The client only ever holds a transient copy: a Note in memory reflects the
// server state as of the response that delivered it.
type Note struct {
	// ID is the opaque server-side identifier, sent on the wire as "_id".
	ID string `json:"_id"`

	// Title is the short heading of the note.
	Title string `json:"title"`

	// Description is the free-form body of the note.
	Description string `json:"description"`

	// Tags is an ordered list of text labels.
	Tags []string `json:"tags"`

	// IsPinned marks a note for priority display. Pinned notes are sorted
	// ahead of unpinned ones after every full load.
	IsPinned bool `json:"isPinned"`
}

// Clone returns a copy of n that shares no memory with it.
func (n Note) Clone() Note {
	if n.Tags != nil {
		tags := make([]string, len(n.Tags))
		copy(tags, n.Tags)
		n.Tags = tags
	}
	return n
}
