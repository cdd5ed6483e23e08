// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrMalformedRow    = errors.New("malformed row")

	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidParentID    = errors.New("invalid parent id")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyBody          = errors.New("message body is required")
	ErrBodyTooLong        = errors.New("message body is too long")
	ErrInvalidSkillLevel  = errors.New("skill level must be between 1 and 5")
	ErrInvalidCapacity    = errors.New("capacity must not be negative")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidDistance    = errors.New("max distance must not be negative")
	ErrInvalidTarget      = errors.New("target games must be positive")
	ErrInvalidPeriod      = errors.New("invalid goal period")
	ErrMissingTime        = errors.New("timestamp is required")

	ErrUnknownColumn   = errors.New("unknown column")
	ErrMissingColumn   = errors.New("missing required column")
	ErrInvalidValue    = errors.New("invalid column value")
	ErrEmptyBodyRow    = errors.New("row is empty")
	ErrOperatorNotText = errors.New("operator only applies to text columns")
)
