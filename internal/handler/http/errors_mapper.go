// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/devserver"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                   http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:      http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:    http.StatusUnauthorized,
	ErrTokenNotAccepted:              http.StatusUnauthorized,
	ErrTokenIsExpired:                http.StatusUnauthorized,
	devserver.ErrNoOwner:             http.StatusUnauthorized,
	devserver.ErrInvalidDataProvided: http.StatusBadRequest,
	devserver.ErrNoteNotFound:        http.StatusNotFound,
}

// errorMessages is checked in order; the most specific error comes first.
var errorMessages = []struct {
	target error
	msg    string
}{
	{validators.ErrEmptyTitle, app.MsgTitleRequired},
	{validators.ErrEmptyTag, app.MsgEmptyTag},
	{validators.ErrTooManyTags, app.MsgTooManyTags},
	{devserver.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{devserver.ErrNoteNotFound, app.MsgNoteNotFound},
	{devserver.ErrNoOwner, app.MsgUnauthorized},
	{ErrEmptyAuthorizationHeader, app.MsgUnauthorized},
	{ErrInvalidAuthorizationHeader, app.MsgUnauthorized},
	{ErrTokenNotAccepted, app.MsgUnauthorized},
	{ErrTokenIsExpired, app.MsgUnauthorized},
	{ErrInvalidJSON, app.MsgInvalidJSON},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return app.MsgInternalServerError
}
