// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/MKhiriev/go-pickup/internal/service"
)

type Handler struct {
	services   *service.Services
	subscriber realtime.Subscriber

	// requestTimeout bounds REST requests; zero disables it.
	requestTimeout time.Duration

	// done is cancelled by Close. Websocket connections are hijacked, so
	// http.Server.Shutdown does not end them on its own.
	done   context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

func NewHandler(services *service.Services, subscriber realtime.Subscriber, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	done, cancel := context.WithCancel(context.Background())
	return &Handler{
		services:       services,
		subscriber:     subscriber,
		requestTimeout: requestTimeout,
		done:           done,
		cancel:         cancel,
		logger:         logger,
	}
}

// Close ends every open realtime session.
func (h *Handler) Close() {
	h.cancel()
}
