// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidQuery        = errors.New("invalid query")
	ErrNoUserID            = errors.New("no user ID in context")
	ErrAccessDenied        = errors.New("access denied")
	ErrOwnerFilterRequired = errors.New("delete must be filtered by owner")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)

// client side
var (
	ErrUnknownCollection   = errors.New("unknown collection")
	ErrAlreadyExists       = errors.New("already exists")
	ErrParentNotFound      = errors.New("parent not found")
	ErrConstraintViolation = errors.New("rejected by server constraints")
	ErrNotFound            = errors.New("not found")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrNoSession           = errors.New("no session: configure a bearer token")
)
