// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers user-facing feedback produced by the service layer.
//
// [Notifier] is the sink the notes store reports to. [Queue] buffers toasts
// for the terminal UI, [Log] mirrors them into the application log and
// [Multi] fans a single notification out to several sinks.
package notify

import "time"

//go:generate mockgen -source=notifier.go -destination=../mock/notifier_mock.go -package=mock

// Notifier receives success and error messages meant for the user.
// Implementations must not block the caller.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Kind is the severity of a [Toast].
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Toast is a single notification as shown by the UI.
type Toast struct {
	Kind    Kind
	Message string
	At      time.Time
}
