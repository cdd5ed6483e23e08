// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs. A [Worker] is started
// once with a context and stopped on shutdown; [Workers] starts and stops a
// group of them together.
package workers

import "context"

// Worker is a background job.
type Worker interface {
	// Start launches the job in the background. It returns immediately; the
	// job runs until ctx is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop ends the job and blocks until it has exited. Calling Stop on a
	// job that is not running is a no-op.
	Stop()
}
