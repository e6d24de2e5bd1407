// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNotesNotLoaded is reported when a mutation is attempted before the
	// first successful load.
	ErrNotesNotLoaded = errors.New("notes are not loaded")

	// ErrStoreClosed is reported for operations started after Close.
	ErrStoreClosed = errors.New("notes store is closed")
)

// User-visible feedback.
const (
	MsgNoteCreated    = "Note created successfully"
	MsgNoteDeleted    = "Note deleted successfully"
	MsgNoteUpdated    = "Note updated successfully"
	MsgNotePinned     = "Note pinned successfully"
	MsgNoteUnpinned   = "Note unpinned successfully"
	MsgNotesNotLoaded = "Notes are not loaded yet."
)
