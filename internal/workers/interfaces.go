// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the notes client as one
// group with a shared lifetime.
package workers

import "context"

// Worker is a background job. Start returns right away and the job runs
// until ctx is cancelled or Stop is called. Stop waits for the job to end
// and must be safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
