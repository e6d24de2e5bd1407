// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message texts of the notes dev
// server.
//
// The Msg* constants end up in the "msg" field of the API's error payload
// ({"errors":[{"msg":"..."}]}) and are shown to the user by the client as
// they are. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgUnauthorized is returned when the bearer token is missing, malformed,
	// expired or not accepted by the server.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned for a request that fails validation
	// without a more specific message.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgTitleRequired is returned when a note is created or updated with a
	// blank title.
	MsgTitleRequired = "Title is required"

	// MsgEmptyTag is returned when one of the tags is blank.
	MsgEmptyTag = "Tags must not be empty"

	// MsgTooManyTags is returned when a note carries more tags than allowed.
	MsgTooManyTags = "Too many tags"

	// MsgNoteNotFound is returned when the note id does not exist for the
	// authenticated user.
	MsgNoteNotFound = "Note not found"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
