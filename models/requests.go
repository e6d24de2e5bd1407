// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteRequest is the body of POST /notes and PUT /notes/{id}.
type NoteRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// PinRequest is the body of PUT /notes/{id}/isPinned.
type PinRequest struct {
	IsPinned bool `json:"isPinned"`
}
