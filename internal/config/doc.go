// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the go-pickup configuration.
//
// Sources, later non-zero fields win:
//  1. .env file (path from ENV_FILE, default ".env"), exported into the environment
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file (-c / -config / CONFIG)
//
// [GetStructuredConfig] returns the server configuration and
// [GetClientConfig] the client view.
package config
