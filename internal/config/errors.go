// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete.
var (
	// ErrInvalidAdapterConfigs: the client has no server address or token.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: a required DSN is missing, or the client
	// was pointed at an in-memory database.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: token signing settings are missing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: the refresh interval is not positive.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
