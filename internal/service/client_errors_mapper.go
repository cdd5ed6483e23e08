// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/app"
)

// mapAdapterError adds the business error matching an adapter failure. The
// adapter error stays in the chain, so errors.Is(err, adapter.ErrTransport)
// keeps holding.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if mapped := businessError(err); mapped != nil {
		return fmt.Errorf("%w: %w", mapped, err)
	}
	return err
}

func businessError(err error) error {
	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidQuery:
			return ErrInvalidQuery
		case app.MsgOwnerFilterRequired:
			return ErrOwnerFilterRequired
		case app.MsgConstraintViolation:
			return ErrConstraintViolation
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownCollection {
			return ErrUnknownCollection
		}
		return ErrNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgParentNotFound:
			return ErrParentNotFound
		}
		return ErrAlreadyExists

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerUnavailable
	}

	return nil
}

// extractBody returns the response body at the end of an adapter error of
// the form "transport error: conflict: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
