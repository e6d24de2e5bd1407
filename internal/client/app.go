// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
)

type App struct {
	session SessionRestorer
	ui      UI
	workers *workers.Workers
	closers []io.Closer

	logger *logger.Logger
}

// NewApp builds the client. The closers are closed in reverse order after
// the UI exits and the workers have stopped.
func NewApp(session SessionRestorer, ui UI, jobs *workers.Workers, log *logger.Logger, closers ...io.Closer) (*App, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if ui == nil {
		return nil, ErrNoUI
	}
	if jobs == nil {
		jobs = workers.New()
	}

	return &App{
		session: session,
		ui:      ui,
		workers: jobs,
		closers: closers,
		logger:  log,
	}, nil
}

// Run blocks until the UI exits. A session that cannot be restored only
// means the user has to log in again.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	restored, err := a.session.Restore(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("session is not restored")
	} else {
		a.logger.Info().Str("func", "*App.Run").Bool("restored", restored).Msg("session checked")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("close failed")
		}
	}
}
