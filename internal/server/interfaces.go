// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal has
	// been received and the server has shut down.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
