// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes and note requests accepted by the dev
// server before they reach the backend.
//
// [Validator] takes the value and an optional list of field names; without
// fields every rule of the value's type is applied. [NoteValidator] is the
// only implementation.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
