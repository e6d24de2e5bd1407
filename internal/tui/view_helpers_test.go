// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "abc", max: 5, want: "abc"},
		{name: "cut", in: "abcdefgh", max: 6, want: "abc..."},
		{name: "tiny limit", in: "abcdef", max: 2, want: "ab"},
		{name: "no limit", in: "abcdef", max: 0, want: "abcdef"},
		{name: "runes", in: "приветмир", max: 7, want: "прив..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{}, parseTags(""))
	assert.Equal(t, []string{"a", "b c"}, parseTags(" a ,, b c ,"))
	assert.Equal(t, "a, b", joinTags([]string{"a", "b"}))
}

func TestHumanizeLoginError(t *testing.T) {
	assert.Empty(t, humanizeLoginError(nil))
	assert.Equal(t, "Token is required", humanizeLoginError(auth.ErrEmptyToken))
	assert.Equal(t, "Token is expired", humanizeLoginError(auth.ErrTokenExpired))
	assert.Equal(t, "boom", humanizeLoginError(errors.New("boom")))
}
