// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the go-pickup HTTP server: startup, signal handling
// and graceful shutdown, including the realtime websocket sessions.
package server
