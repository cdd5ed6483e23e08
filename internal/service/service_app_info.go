// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/store"
)

type appInfoService struct {
	appVersion  string
	collections []string

	logger *logger.Logger
}

// NewAppInfoService reports the configured version and the collections the
// server exposes.
func NewAppInfoService(cfg config.App, schemas store.Schemas, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		collections: schemas.Names(),
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetCollections(ctx context.Context) []string {
	return s.collections
}
