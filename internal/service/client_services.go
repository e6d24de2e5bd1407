// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/notify"
)

// ClientServices groups the services of the notes client.
type ClientServices struct {
	Notes  *NotesStore
	Binder *SessionBinder
}

func NewClientServices(api adapter.NotesAdapter, auth AuthProvider, notifier notify.Notifier, log *logger.Logger) *ClientServices {
	notes := NewNotesStore(api, notifier, log)

	return &ClientServices{
		Notes:  notes,
		Binder: NewSessionBinder(notes, auth, log),
	}
}

// Close cancels the store's requests and then waits for the binder. It
// always returns nil and exists to satisfy io.Closer.
func (c *ClientServices) Close() error {
	c.Notes.Close()
	c.Binder.Stop()
	return nil
}
