// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pickup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CollectionService serves the REST collections. Writes are attributed to
// the user id stored in ctx and published to realtime subscribers.
type CollectionService interface {
	List(ctx context.Context, collection string, query models.Query) ([]models.Row, error)
	Insert(ctx context.Context, collection string, row models.Row, upsert bool) (models.Row, error)
	Delete(ctx context.Context, collection string, query models.Query) ([]models.Row, error)

	// Authorize checks a realtime subscription request.
	Authorize(ctx context.Context, collection string, filter models.Filter) error
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetCollections(ctx context.Context) []string
}

// CollectionServiceWrapper defines middleware composition for
// CollectionService. Implementations wrap an existing CollectionService to
// add behavior such as validation.
type CollectionServiceWrapper interface {
	Wrap(CollectionService) CollectionService
}
