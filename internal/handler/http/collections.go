// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/go-chi/chi/v5"
)

const (
	headerPrefer = "Prefer"

	preferMergeDuplicates = "resolution=merge-duplicates"
	preferRepresentation  = "return=representation"
)

// prefers reports whether the Prefer header carries option.
func prefers(r *http.Request, option string) bool {
	for _, header := range r.Header.Values(headerPrefer) {
		for _, part := range strings.Split(header, ",") {
			if strings.TrimSpace(part) == option {
				return true
			}
		}
	}
	return false
}

// list serves GET /rest/v1/{collection}?column=op.value&order=...&limit=...
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, collectionParam)

	query, err := models.ParseQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.list", err)
		return
	}

	rows, err := h.services.CollectionService.List(r.Context(), collection, query)
	if err != nil {
		writeError(w, r, "*Handler.list", err)
		return
	}
	if rows == nil {
		rows = []models.Row{}
	}

	if _, err = utils.WriteJSON(w, rows, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.list").Msg("failed to write response")
	}
}

// insert serves POST /rest/v1/{collection}. The stored row is returned as a
// single element array, the way PostgREST answers return=representation.
func (h *Handler) insert(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, collectionParam)

	var row models.Row
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil || row == nil {
		writeError(w, r, "*Handler.insert", fmt.Errorf("%w: %v", ErrInvalidJSON, err))
		return
	}

	stored, err := h.services.CollectionService.Insert(r.Context(), collection, row, prefers(r, preferMergeDuplicates))
	if err != nil {
		writeError(w, r, "*Handler.insert", err)
		return
	}

	if _, err = utils.WriteJSON(w, []models.Row{stored}, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.insert").Msg("failed to write response")
	}
}

// delete serves DELETE /rest/v1/{collection}?... Deleted rows are returned
// only when asked for with return=representation.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, collectionParam)

	query, err := models.ParseQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.delete", err)
		return
	}

	deleted, err := h.services.CollectionService.Delete(r.Context(), collection, query)
	if err != nil {
		writeError(w, r, "*Handler.delete", err)
		return
	}

	if !prefers(r, preferRepresentation) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if deleted == nil {
		deleted = []models.Row{}
	}

	if _, err = utils.WriteJSON(w, deleted, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.delete").Msg("failed to write response")
	}
}
