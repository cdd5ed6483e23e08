// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/models"
)

// collectionService enforces the owner rule of every collection and
// publishes one change event per written row.
type collectionService struct {
	schemas    store.Schemas
	repository store.CollectionRepository
	publisher  realtime.Publisher
	now        func() time.Time

	logger *logger.Logger
}

func NewCollectionService(schemas store.Schemas, repository store.CollectionRepository, publisher realtime.Publisher, logger *logger.Logger) CollectionService {
	return &collectionService{
		schemas:    schemas,
		repository: repository,
		publisher:  publisher,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *collectionService) List(ctx context.Context, collection string, query models.Query) ([]models.Row, error) {
	schema, err := s.schemas.Get(collection)
	if err != nil {
		return nil, err
	}

	return s.repository.Select(ctx, schema, query)
}

// Insert stores row. The row's owner column must equal the caller, and an
// upsert never takes over a row of another owner.
func (s *collectionService) Insert(ctx context.Context, collection string, row models.Row, upsert bool) (models.Row, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoUserID
	}

	schema, err := s.schemas.Get(collection)
	if err != nil {
		return nil, err
	}

	if owner, _ := row[schema.OwnerColumn].(string); owner != userID {
		log.Warn().Str("func", "*collectionService.Insert").
			Str("collection", collection).
			Str("user_id", userID).
			Str("owner", owner).
			Msg("insert on behalf of another user rejected")
		return nil, fmt.Errorf("%w: %s must be the caller", ErrAccessDenied, schema.OwnerColumn)
	}

	stored, changeType, err := s.repository.Insert(ctx, schema, row, upsert)
	if errors.Is(err, store.ErrOwnerMismatch) {
		return nil, fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, models.ChangeEvent{
		Type:            changeType,
		Collection:      collection,
		Record:          stored,
		CommitTimestamp: s.now().UTC(),
	})

	return stored, nil
}

// Delete removes the caller's rows matching query. The query must pin the
// owner column to the caller with an eq filter.
func (s *collectionService) Delete(ctx context.Context, collection string, query models.Query) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoUserID
	}

	schema, err := s.schemas.Get(collection)
	if err != nil {
		return nil, err
	}

	owner, ok := query.Filter(schema.OwnerColumn)
	if !ok || owner.Operator != models.OpEq {
		return nil, ErrOwnerFilterRequired
	}
	if owner.Value != userID {
		log.Warn().Str("func", "*collectionService.Delete").
			Str("collection", collection).
			Str("user_id", userID).
			Str("owner", owner.Value).
			Msg("delete of another user's rows rejected")
		return nil, ErrAccessDenied
	}

	deleted, err := s.repository.Delete(ctx, schema, query)
	if err != nil {
		return nil, err
	}

	at := s.now().UTC()
	for _, row := range deleted {
		s.publisher.Publish(ctx, models.ChangeEvent{
			Type:            models.ChangeDelete,
			Collection:      collection,
			OldRecord:       row,
			CommitTimestamp: at,
		})
	}

	return deleted, nil
}

// Authorize allows any authenticated user to watch any declared collection.
// A filter must name a declared column.
func (s *collectionService) Authorize(ctx context.Context, collection string, filter models.Filter) error {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return ErrNoUserID
	}

	schema, err := s.schemas.Get(collection)
	if err != nil {
		return err
	}

	if filter.Column == "" {
		return nil
	}
	if _, ok := schema.Column(filter.Column); !ok {
		return fmt.Errorf("%w: unknown column %s", ErrInvalidQuery, filter.Column)
	}

	return nil
}
