// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-notes-keeper/internal/notify"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type stateMsg struct {
	state service.State
}

type toastMsg struct {
	toast notify.Toast
}

type clearToastMsg struct {
	seq int
}

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type formDoneMsg struct {
	seq int
	ok  bool
}

// opDoneMsg ends a command whose outcome arrives as a state update or a
// toast.
type opDoneMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
