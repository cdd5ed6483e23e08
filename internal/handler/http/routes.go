// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const collectionParam = "collection"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/collections", h.getCollections)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/rest/v1", func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}
			r.Use(withGZip)
			r.Get("/{"+collectionParam+"}", h.list)
			r.Post("/{"+collectionParam+"}", h.insert)
			r.Delete("/{"+collectionParam+"}", h.delete)
		})

		r.Get("/realtime/v1/websocket", h.realtime)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
