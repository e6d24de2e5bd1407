// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import "errors"

var (
	// ErrNoOwner is returned when the request carries no authenticated owner.
	ErrNoOwner = errors.New("no owner provided")

	// ErrNoteNotFound is returned when the id does not name a note of the
	// owner.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidDataProvided wraps validation failures of a note request.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
