// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/auth"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// SessionBinder loads the notes when the user logs in and resets them when
// the user logs out. It is idle until Start is called.
type SessionBinder struct {
	notes  NotesLifecycle
	auth   AuthProvider
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSessionBinder(notes NotesLifecycle, auth AuthProvider, log *logger.Logger) *SessionBinder {
	return &SessionBinder{
		notes:  notes,
		auth:   auth,
		logger: log,
	}
}

// Start stops any previous run, then follows the session in the background
// until ctx is cancelled or Stop is called. When the user is already logged
// in the notes are loaded once right away.
func (b *SessionBinder) Start(ctx context.Context) {
	b.Stop()

	b.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	events, unsubscribe := b.auth.Subscribe()
	loggedIn := b.auth.LoggedIn()
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		defer unsubscribe()

		if loggedIn {
			b.load(jobCtx)
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				b.handle(jobCtx, ev)
			}
		}
	}()
}

// Stop ends the background run and waits for loads it started. Safe to call
// when the binder is not running.
func (b *SessionBinder) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
}

func (b *SessionBinder) handle(ctx context.Context, ev auth.Event) {
	b.logger.Debug().Str("func", "SessionBinder.handle").Stringer("event", ev.Kind).Msg("session event")

	switch ev.Kind {
	case auth.LoggedIn:
		b.load(ctx)
	case auth.LoggedOut:
		b.notes.Reset()
	}
}

// load runs in its own goroutine so that a logout arriving meanwhile can
// reset the store and cancel it.
func (b *SessionBinder) load(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.notes.Load(ctx)
	}()
}
