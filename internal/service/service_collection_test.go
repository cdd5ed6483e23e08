// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/mock"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var commitTime = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestCollectionSvc(t *testing.T, ctrl *gomock.Controller) (CollectionService, *mock.MockCollectionRepository, *mock.MockPublisher) {
	t.Helper()

	repo := mock.NewMockCollectionRepository(ctrl)
	publisher := mock.NewMockPublisher(ctrl)

	inner := NewCollectionService(store.DefaultSchemas(), repo, publisher, logger.Nop()).(*collectionService)
	inner.now = func() time.Time { return commitTime }

	svc := NewCollectionValidationService(store.DefaultSchemas()).Wrap(inner)
	return svc, repo, publisher
}

func asUser(userID string) context.Context {
	return utils.WithUserID(context.Background(), userID)
}

// ── List ──

func TestCollectionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCollectionSvc(t, ctrl)

	query := models.NewQuery(models.Eq("game_id", "game-42"))
	repo.EXPECT().Select(gomock.Any(), gomock.Any(), query).DoAndReturn(
		func(_ context.Context, schema models.Schema, _ models.Query) ([]models.Row, error) {
			assert.Equal(t, "game_players", schema.Table)
			return []models.Row{{"user_id": "u1"}}, nil
		})

	rows, err := svc.List(asUser("u1"), models.CollectionGamePlayers, query)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCollectionService_List_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		query      models.Query
		want       error
	}{
		{"unknown collection", "users", models.Query{}, store.ErrUnknownCollection},
		{"unknown column", models.CollectionGames, models.NewQuery(models.Eq("password", "x")), ErrInvalidQuery},
		{"bad value", models.CollectionGames, models.NewQuery(models.Compare("capacity", models.OpGt, "many")), validators.ErrInvalidValue},
		{"unknown order column", models.CollectionGames, models.Query{}.OrderBy("nope", false), validators.ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestCollectionSvc(t, ctrl)

			_, err := svc.List(asUser("u1"), tt.collection, tt.query)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Insert ──

func TestCollectionService_Insert_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, publisher := newTestCollectionSvc(t, ctrl)

	stored := models.Row{"game_id": "game-42", "user_id": "u1", "skill_level": int64(3), "joined_at": commitTime}

	gomock.InOrder(
		repo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, _ models.Schema, row models.Row, _ bool) (models.Row, models.ChangeType, error) {
				assert.Equal(t, int64(3), row["skill_level"], "values are coerced to column types")
				assert.NotContains(t, row, "joined_at", "zero defaulted columns are dropped")
				return stored, models.ChangeInsert, nil
			}),
		publisher.EXPECT().Publish(gomock.Any(), models.ChangeEvent{
			Type:            models.ChangeInsert,
			Collection:      models.CollectionGamePlayers,
			Record:          stored,
			CommitTimestamp: commitTime,
		}),
	)

	got, err := svc.Insert(asUser("u1"), models.CollectionGamePlayers,
		models.Row{"game_id": "game-42", "user_id": "u1", "skill_level": float64(3), "joined_at": "0001-01-01T00:00:00Z"}, false)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCollectionService_Insert_UpsertPublishesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, publisher := newTestCollectionSvc(t, ctrl)

	stored := models.Row{"user_id": "u1", "display_name": "Ann"}
	repo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(stored, models.ChangeUpdate, nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev models.ChangeEvent) {
		assert.Equal(t, models.ChangeUpdate, ev.Type)
		assert.Equal(t, models.CollectionPreferences, ev.Collection)
	})

	_, err := svc.Insert(asUser("u1"), models.CollectionPreferences, models.Row{"user_id": "u1", "display_name": "Ann"}, true)
	require.NoError(t, err)
}

func TestCollectionService_Insert_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		collection string
		row        models.Row
		want       error
	}{
		{"no user", context.Background(), models.CollectionGamePlayers, models.Row{"game_id": "g", "user_id": "u1"}, ErrNoUserID},
		{"other owner", asUser("u1"), models.CollectionGamePlayers, models.Row{"game_id": "g", "user_id": "u2"}, ErrAccessDenied},
		{"game hosted by other", asUser("u1"), models.CollectionGames, models.Row{"id": "g", "host_id": "u2", "title": "t", "starts_at": "2026-10-20T18:00:00Z"}, ErrAccessDenied},
		{"missing required", asUser("u1"), models.CollectionGamePlayers, models.Row{"user_id": "u1"}, validators.ErrMissingColumn},
		{"unknown column", asUser("u1"), models.CollectionGamePlayers, models.Row{"game_id": "g", "user_id": "u1", "admin": true}, ErrInvalidDataProvided},
		{"empty row", asUser("u1"), models.CollectionGamePlayers, models.Row{}, validators.ErrEmptyBodyRow},
		{"unknown collection", asUser("u1"), "users", models.Row{"id": "x"}, store.ErrUnknownCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestCollectionSvc(t, ctrl)

			_, err := svc.Insert(tt.ctx, tt.collection, tt.row, false)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCollectionService_Insert_RepositoryErrorNotPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCollectionSvc(t, ctrl)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil, models.ChangeType(""), store.ErrAlreadyExists)

	_, err := svc.Insert(asUser("u1"), models.CollectionGamePlayers, models.Row{"game_id": "g", "user_id": "u1"}, false)
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCollectionService_Insert_UpsertOfForeignRowDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCollectionSvc(t, ctrl)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), true).
		Return(nil, models.ChangeType(""), store.ErrOwnerMismatch)

	_, err := svc.Insert(asUser("u1"), models.CollectionGames,
		models.Row{"id": "someone-elses-game", "host_id": "u1", "title": "t", "starts_at": "2026-10-20T18:00:00Z"}, true)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, store.ErrOwnerMismatch)
}

// ── Delete ──

func TestCollectionService_Delete_PublishesPerRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, publisher := newTestCollectionSvc(t, ctrl)

	query := models.NewQuery(models.Eq("game_id", "game-42"), models.Eq("user_id", "u1"))
	deleted := []models.Row{{"game_id": "game-42", "user_id": "u1"}}

	repo.EXPECT().Delete(gomock.Any(), gomock.Any(), query).Return(deleted, nil)
	publisher.EXPECT().Publish(gomock.Any(), models.ChangeEvent{
		Type:            models.ChangeDelete,
		Collection:      models.CollectionGamePlayers,
		OldRecord:       deleted[0],
		CommitTimestamp: commitTime,
	}).Times(1)

	got, err := svc.Delete(asUser("u1"), models.CollectionGamePlayers, query)
	require.NoError(t, err)
	assert.Equal(t, deleted, got)
}

func TestCollectionService_Delete_NothingDeletedPublishesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCollectionSvc(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Row{}, nil)

	_, err := svc.Delete(asUser("u1"), models.CollectionGamePlayers, models.NewQuery(models.Eq("user_id", "u1")))
	require.NoError(t, err)
}

func TestCollectionService_Delete_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		query models.Query
		want  error
	}{
		{"no filters", models.Query{}, ErrOwnerFilterRequired},
		{"no owner filter", models.NewQuery(models.Eq("game_id", "game-42")), ErrOwnerFilterRequired},
		{"owner filter not eq", models.NewQuery(models.In("user_id", "u1", "u2")), ErrOwnerFilterRequired},
		{"other owner", models.NewQuery(models.Eq("user_id", "u2")), ErrAccessDenied},
		{"unknown column", models.NewQuery(models.Eq("user_id", "u1"), models.Eq("nope", "x")), ErrInvalidQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestCollectionSvc(t, ctrl)

			_, err := svc.Delete(asUser("u1"), models.CollectionGamePlayers, tt.query)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCollectionService_Delete_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCollectionSvc(t, ctrl)

	boom := errors.New("boom")
	repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.Delete(asUser("u1"), models.CollectionMessages, models.NewQuery(models.Eq("user_id", "u1")))
	assert.ErrorIs(t, err, boom)
}

// ── Authorize ──

func TestCollectionService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestCollectionSvc(t, ctrl)

	assert.NoError(t, svc.Authorize(asUser("u1"), models.CollectionGamePlayers, models.Eq("game_id", "game-42")))
	assert.NoError(t, svc.Authorize(asUser("u1"), models.CollectionMessages, models.Filter{}))
	assert.ErrorIs(t, svc.Authorize(context.Background(), models.CollectionMessages, models.Filter{}), ErrNoUserID)
	assert.ErrorIs(t, svc.Authorize(asUser("u1"), "users", models.Filter{}), store.ErrUnknownCollection)
	assert.ErrorIs(t, svc.Authorize(asUser("u1"), models.CollectionGames, models.Eq("secret", "x")), ErrInvalidQuery)
}
