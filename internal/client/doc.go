// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI together with the background workers that keep
// the live lists on screen fresh, and ties both to one process lifecycle.
package client
