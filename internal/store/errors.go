// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	ErrUnknownCollection = errors.New("unknown collection")

	ErrAlreadyExists = errors.New("row already exists")

	ErrParentNotFound = errors.New("referenced parent row does not exist")

	ErrConstraintViolation = errors.New("row violates a constraint")

	ErrNotFound = errors.New("row was not found")

	ErrNothingInserted = errors.New("insert returned no row")

	ErrOwnerMismatch = errors.New("existing row belongs to another owner")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRows = errors.New("failed to scan rows")
)
