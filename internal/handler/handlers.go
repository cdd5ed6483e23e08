// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/handler/http"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/MKhiriev/go-pickup/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, subscriber realtime.Subscriber, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, subscriber, cfg.RequestTimeout, logger),
	}, nil
}
