// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/auth"
)

func humanizeLoginError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, auth.ErrEmptyToken):
		return "Token is required"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token is expired"
	default:
		return err.Error()
	}
}
