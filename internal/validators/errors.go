// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteID = errors.New("note id is required")
	ErrEmptyTitle  = errors.New("title is required")
	ErrEmptyTag    = errors.New("tags must not contain empty values")
	ErrTooManyTags = errors.New("too many tags")
)
