// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Remote Collection Client: filtered reads, inserts
// and deletes against the go-pickup REST surface, and change subscriptions
// over the realtime websocket.
//
// Every failure wraps [ErrTransport]; HTTP failures additionally wrap the
// sentinel for their status code (e.g. [ErrConflict] for 409), so callers
// can use [errors.Is] at either level.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pickup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_adapter_mock.go -package=mock

// CollectionAdapter talks to remote collections. Rows are returned
// undecoded; turning them into typed entities is the caller's job.
type CollectionAdapter interface {
	// List returns every row of collection matching query.
	List(ctx context.Context, collection string, query models.Query) ([]models.Row, error)

	// Single returns the first row matching query, or an error wrapping
	// [ErrNotFound].
	Single(ctx context.Context, collection string, query models.Query) (models.Row, error)

	// Insert stores row and returns the stored representation. With upsert
	// set, a row with the same key is merged instead of rejected.
	Insert(ctx context.Context, collection string, row models.Row, upsert bool) (models.Row, error)

	// Delete removes every row matching query.
	Delete(ctx context.Context, collection string, query models.Query) error

	// Subscribe delivers every change of collection matching filter to
	// onEvent, on a goroutine owned by the subscription, until the returned
	// function is called. After a dropped connection is re-established a
	// RESYNC event is delivered. The returned function is idempotent and
	// must not be called from inside onEvent.
	Subscribe(ctx context.Context, collection string, filter models.Filter, onEvent func(models.ChangeEvent)) (models.Unsubscribe, error)
}
