// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// getCollections lists the collection names served under /rest/v1.
func (h *Handler) getCollections(w http.ResponseWriter, r *http.Request) {
	collections := h.services.AppInfoService.GetCollections(r.Context())

	if _, err := utils.WriteJSON(w, collections, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getCollections").Msg("failed to write response")
	}
}
