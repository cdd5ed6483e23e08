// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pickup/internal/app"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. The messages
// are part of the API: the client recovers business errors from them.
var errorResponses = []struct {
	err error
	errorResponse
}{
	{service.ErrOwnerFilterRequired, errorResponse{http.StatusBadRequest, app.MsgOwnerFilterRequired}},
	{service.ErrInvalidQuery, errorResponse{http.StatusBadRequest, app.MsgInvalidQuery}},
	{models.ErrInvalidFilter, errorResponse{http.StatusBadRequest, app.MsgInvalidQuery}},
	{models.ErrInvalidOrder, errorResponse{http.StatusBadRequest, app.MsgInvalidQuery}},
	{models.ErrInvalidLimit, errorResponse{http.StatusBadRequest, app.MsgInvalidQuery}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{store.ErrConstraintViolation, errorResponse{http.StatusBadRequest, app.MsgConstraintViolation}},

	{service.ErrNoUserID, errorResponse{http.StatusUnauthorized, app.MsgNoUserIDProvided}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrAccessDenied, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
	{store.ErrOwnerMismatch, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},

	{store.ErrUnknownCollection, errorResponse{http.StatusNotFound, app.MsgUnknownCollection}},
	{store.ErrNotFound, errorResponse{http.StatusNotFound, http.StatusText(http.StatusNotFound)}},

	{store.ErrAlreadyExists, errorResponse{http.StatusConflict, app.MsgAlreadyExists}},
	{store.ErrParentNotFound, errorResponse{http.StatusConflict, app.MsgParentNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.err) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with its mapped status and message.
// Client errors are logged at warn level, server errors at error level.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", resp.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", resp.status).Msg("request rejected")
	}

	http.Error(w, resp.message, resp.status)
}
