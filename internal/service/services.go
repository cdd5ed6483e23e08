// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/MKhiriev/go-pickup/internal/store"
)

type Services struct {
	AuthService       AuthService
	CollectionService CollectionService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, publisher realtime.Publisher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.Schemas, logger)
	if err != nil {
		return nil, err
	}

	collections := NewCollectionValidationService(storages.Schemas).
		Wrap(NewCollectionService(storages.Schemas, storages.Collections, publisher, logger))

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		CollectionService: collections,
		AppInfoService:    appInfo,
	}, nil
}
