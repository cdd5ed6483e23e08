// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
)

// CollectionValidationService checks request rows and queries against the
// collection schema before the wrapped service sees them. Rows reach the
// inner service with their values coerced to the column types.
type CollectionValidationService struct {
	inner   CollectionService
	schemas store.Schemas
}

func NewCollectionValidationService(schemas store.Schemas) CollectionServiceWrapper {
	return &CollectionValidationService{schemas: schemas}
}

func (v *CollectionValidationService) Wrap(inner CollectionService) CollectionService {
	v.inner = inner
	return v
}

func (v *CollectionValidationService) List(ctx context.Context, collection string, query models.Query) ([]models.Row, error) {
	schema, err := v.schemas.Get(collection)
	if err != nil {
		return nil, err
	}

	if err = validators.ValidateQuery(schema, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return v.inner.List(ctx, collection, query)
}

func (v *CollectionValidationService) Insert(ctx context.Context, collection string, row models.Row, upsert bool) (models.Row, error) {
	schema, err := v.schemas.Get(collection)
	if err != nil {
		return nil, err
	}

	coerced, err := validators.CoerceRow(schema, row, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Insert(ctx, collection, coerced, upsert)
}

func (v *CollectionValidationService) Delete(ctx context.Context, collection string, query models.Query) ([]models.Row, error) {
	schema, err := v.schemas.Get(collection)
	if err != nil {
		return nil, err
	}

	if len(query.Filters) == 0 {
		return nil, ErrOwnerFilterRequired
	}
	if err = validators.ValidateQuery(schema, query); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return v.inner.Delete(ctx, collection, query)
}

func (v *CollectionValidationService) Authorize(ctx context.Context, collection string, filter models.Filter) error {
	return v.inner.Authorize(ctx, collection, filter)
}
