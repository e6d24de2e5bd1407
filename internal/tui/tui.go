// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the notes client on
// bubbletea.
//
// The UI never mutates notes itself. It calls [NotesService] from commands
// off the render loop and re-renders from the state snapshots the store
// publishes. Notifications arrive on the toast channel and are shown in a
// single status line.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/notify"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// NotesService is the part of the notes store the UI drives.
type NotesService interface {
	Load(ctx context.Context)
	Create(ctx context.Context, title, description string, tags []string) bool
	Update(ctx context.Context, id, title, description string, tags []string) bool
	SetPinned(ctx context.Context, id string, pinned bool) bool
	Delete(ctx context.Context, id string)
	SetSearchQuery(query string)
	State() service.State
	Subscribe() (<-chan service.State, func())
}

// SessionService is the part of the auth session the UI drives.
type SessionService interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	Subject() string
}

type TUI struct {
	notes     NotesService
	session   SessionService
	toasts    <-chan notify.Toast
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(notes NotesService, session SessionService, toasts <-chan notify.Toast, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		notes:     notes,
		session:   session,
		toasts:    toasts,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run shows the UI until the user quits or ctx is cancelled. It returns
// ErrUserQuit when the user closed the UI.
func (t *TUI) Run(ctx context.Context) error {
	states, unsubscribe := t.notes.Subscribe()
	defer unsubscribe()

	model := newAppModel(ctx, appDeps{
		notes:     t.notes,
		session:   t.session,
		states:    states,
		toasts:    t.toasts,
		copyText:  clipboard.WriteAll,
		buildInfo: t.buildInfo,
	})

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		t.logger.Info().Str("func", "*TUI.Run").Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
