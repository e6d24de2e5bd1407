// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the notes client.
//
// It restores the saved session, starts the background workers, runs the
// terminal UI and releases everything when the UI exits.
package client
