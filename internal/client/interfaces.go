// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable client application.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end run by the client.
type UI interface {
	Run(ctx context.Context) error
}

// SessionRestorer loads the session saved by a previous run.
type SessionRestorer interface {
	Restore(ctx context.Context) (bool, error)
}
