// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTransport wraps every failed remote operation, whatever the cause.
	ErrTransport = errors.New("transport error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrSubscriptionRejected is returned when the realtime endpoint answers a
	// subscribe frame with an error frame.
	ErrSubscriptionRejected = errors.New("subscription rejected")
)
