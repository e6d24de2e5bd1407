// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesResponse is the body returned by GET /notes.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// NoteResponse is the body returned by every endpoint that creates or
// modifies a single note.
type NoteResponse struct {
	Note Note `json:"note"`
}

// ErrorResponse is the error payload of the notes API:
//
//	{ "errors": [ { "msg": "..." } ] }
//
// Only the first message is ever shown to the user.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// ErrorItem is a single entry of [ErrorResponse].
type ErrorItem struct {
	Msg string `json:"msg"`
}

// FirstMessage returns the message of the first error item, or an empty
// string when the payload has no items.
func (e ErrorResponse) FirstMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Msg
}
