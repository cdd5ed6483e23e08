// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds both persistence layers of go-pickup: the server's
// PostgreSQL collection repository and the client's SQLite goal repository.
//
// Collections are declared once in [Schemas]; the repository builds every
// statement from the declaration with squirrel, so only declared columns
// can reach SQL.
package store

import (
	"context"

	"github.com/MKhiriev/go-pickup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CollectionRepository reads and writes rows of declared collections.
type CollectionRepository interface {
	// Select returns the rows matching query, in query order or the
	// schema's default order.
	Select(ctx context.Context, schema models.Schema, query models.Query) ([]models.Row, error)

	// Insert stores row and returns the stored representation together with
	// the kind of change it caused. With upsert set, a conflicting row is
	// merged (UPDATE) instead of rejected with [ErrAlreadyExists].
	Insert(ctx context.Context, schema models.Schema, row models.Row, upsert bool) (models.Row, models.ChangeType, error)

	// Delete removes the rows matching query and returns them.
	Delete(ctx context.Context, schema models.Schema, query models.Query) ([]models.Row, error)
}

// GoalRepository persists the client's personal goals.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	DeleteGoal(ctx context.Context, userID string, goalID int64) error
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
