// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the persisted authentication state of the client.
type Session struct {
	// Token is the raw bearer token sent in the Authorization header.
	Token string

	// Subject is the "sub" claim of the token when it is a JWT, empty otherwise.
	Subject string

	// ExpiresAt is the "exp" claim of the token. Zero means the token carries
	// no expiry the client knows about.
	ExpiresAt time.Time

	// SavedAt is the moment the session was written to local storage.
	SavedAt time.Time
}

// Expired reports whether the session has a known expiry that is not after now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
