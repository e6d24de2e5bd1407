// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Unwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "http 401: Unauthorized", (&APIError{StatusCode: 401, Message: "Unauthorized"}).Error())
	assert.Equal(t, "http 404: Not Found", (&APIError{StatusCode: 404}).Error())
}

func TestMessageOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "api message", err: &APIError{StatusCode: 400, Message: "Title is required"}, want: "Title is required"},
		{name: "wrapped api message", err: fmt.Errorf("op: %w", &APIError{StatusCode: 401, Message: "Unauthorized"}), want: "Unauthorized"},
		{name: "api error without message", err: &APIError{StatusCode: 500}, want: FallbackMessage},
		{name: "transport error", err: errors.New("dial tcp: connection refused"), want: FallbackMessage},
		{name: "nil", err: nil, want: FallbackMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageOf(tt.err))
		})
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "first of many", body: `{"errors":[{"msg":"first"},{"msg":"second"}]}`, want: "first"},
		{name: "empty list", body: `{"errors":[]}`, want: ""},
		{name: "missing msg", body: `{"errors":[{"param":"title"}]}`, want: ""},
		{name: "other shape", body: `{"message":"nope"}`, want: ""},
		{name: "errors not a list", body: `{"errors":"boom"}`, want: ""},
		{name: "not json", body: `Internal Server Error`, want: ""},
		{name: "empty", body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage([]byte(tt.body)))
		})
	}
}
