// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by Load when no session was saved.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrSessionNotSaved is returned when a save completes without error but
	// affects no rows.
	ErrSessionNotSaved = errors.New("local session was not saved")
)
