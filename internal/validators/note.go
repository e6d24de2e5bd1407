// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-side identifier of a note.
	FieldID = "id"

	// FieldTitle targets the note title. A blank title is rejected.
	FieldTitle = "title"

	// FieldTags targets the tag list. Each tag must be non-blank.
	FieldTags = "tags"
)

// maxTags bounds the tag list of a single note.
const maxTags = 64

// NoteValidator validates notes and note requests.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.Note and models.NoteRequest (by value or pointer).
// Without fields a Note is checked for id, title and tags, and a NoteRequest
// for title and tags. The first failed rule is returned.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteRequest:
		return v.validateNoteRequest(value, fields...)
	case *models.NoteRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNoteRequest(*value, fields...)

	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteRequest(req models.NoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldTags:
			if err := validateTags(req.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrEmptyNoteID
			}
		case FieldTitle, FieldTags:
			req := models.NoteRequest{Title: note.Title, Tags: note.Tags}
			if err := v.validateNoteRequest(req, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTags(tags []string) error {
	if len(tags) > maxTags {
		return fmt.Errorf("%w: %d > %d", ErrTooManyTags, len(tags), maxTags)
	}
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("validation error at tag %d: %w", i, ErrEmptyTag)
		}
	}
	return nil
}
