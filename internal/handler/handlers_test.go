// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/devserver"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	backend := devserver.NewMemoryNotes(nil, nil, logger.Nop())

	handlers, err := NewHandlers(backend, config.DevServerConfig{Address: "localhost:0"}, "dev", logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoBackend(t *testing.T) {
	handlers, err := NewHandlers(nil, config.DevServerConfig{Address: "localhost:0"}, "dev", logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
