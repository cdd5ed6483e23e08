// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/mock"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	joinTime   = time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)
	annSession = models.Session{UserID: "u1", DisplayName: "Ann", SkillLevel: 3}
)

func newTestGamePlayers(t *testing.T, ctrl *gomock.Controller) (*membershipCollection[models.Player], *mock.MockCollectionAdapter) {
	t.Helper()
	a := mock.NewMockCollectionAdapter(ctrl)
	c := newGamePlayers(a, validators.NewEntityValidator(), annSession, logger.Nop())
	c.now = func() time.Time { return joinTime }
	return c, a
}

func httpErr(sentinel error, body string) error {
	return fmt.Errorf("%w: %w: %s", adapter.ErrTransport, sentinel, body)
}

// ── membershipCollection ──

func TestGamePlayers_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().List(gomock.Any(), models.CollectionGamePlayers, models.NewQuery(models.Eq("game_id", "game-42"))).
		Return([]models.Row{
			{"game_id": "game-42", "user_id": "h", "name": "Host", "skill_level": float64(4)},
			{"game_id": "game-42", "user_id": "a", "name": "A", "skill_level": float64(2)},
		}, nil)

	players, err := c.List(context.Background(), "game-42")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, 4, players[0].SkillLevel)
	assert.Equal(t, "a", players[1].ID())
}

func TestGamePlayers_List_MalformedRowFailsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Row{{"game_id": "game-42", "user_id": "a"}, {"game_id": "game-42", "skill_level": float64(9)}}, nil)

	_, err := c.List(context.Background(), "game-42")
	assert.ErrorIs(t, err, validators.ErrMalformedRow)
}

func TestGamePlayers_PrivilegedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().Single(gomock.Any(), models.CollectionGames, models.NewQuery(models.Eq("id", "game-42"))).
		Return(models.Row{"id": "game-42", "host_id": "h"}, nil)
	a.EXPECT().Single(gomock.Any(), models.CollectionGames, models.NewQuery(models.Eq("id", "game-7"))).
		Return(models.Row{"id": "game-7"}, nil)

	id, err := c.PrivilegedID(context.Background(), "game-42")
	require.NoError(t, err)
	assert.Equal(t, "h", id)

	_, err = c.PrivilegedID(context.Background(), "game-7")
	assert.ErrorIs(t, err, validators.ErrMalformedRow)
}

func TestGamePlayers_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().Insert(gomock.Any(), models.CollectionGamePlayers, models.Row{
		"game_id":     "game-42",
		"user_id":     "u1",
		"name":        "Ann",
		"skill_level": 3,
		"joined_at":   joinTime,
	}, false).Return(models.Row{}, nil)

	require.NoError(t, c.Join(context.Background(), "game-42", "u1"))
}

func TestGamePlayers_Join_ConflictMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil, httpErr(adapter.ErrConflict, "row already exists"))

	err := c.Join(context.Background(), "game-42", "u1")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestGamePlayers_Leave(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().Delete(gomock.Any(), models.CollectionGamePlayers,
		models.NewQuery(models.Eq("game_id", "game-42"), models.Eq("user_id", "u1"))).
		Return(httpErr(adapter.ErrInternalServerError, "internal server error"))

	err := c.Leave(context.Background(), "game-42", "u1")
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestGamePlayers_SubscribeDecodesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	var deliver func(models.ChangeEvent)
	a.EXPECT().Subscribe(gomock.Any(), models.CollectionGamePlayers, models.Eq("game_id", "game-42"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.Filter, onEvent func(models.ChangeEvent)) (models.Unsubscribe, error) {
			deliver = onEvent
			return func() {}, nil
		})

	var got []livelist.Event[models.Player]
	_, err := c.Subscribe(context.Background(), "game-42", func(ev livelist.Event[models.Player]) {
		got = append(got, ev)
	})
	require.NoError(t, err)

	deliver(models.ChangeEvent{Type: models.ChangeInsert, Record: models.Row{"game_id": "game-42", "user_id": "b"}})
	deliver(models.ChangeEvent{Type: models.ChangeInsert, Record: models.Row{"game_id": "game-42"}})
	deliver(models.ChangeEvent{Type: models.ChangeDelete, OldRecord: models.Row{"game_id": "game-42", "user_id": "b"}})
	deliver(models.ChangeEvent{Type: models.ChangeResync})

	require.Len(t, got, 4)
	require.NotNil(t, got[0].Record)
	assert.Equal(t, "b", got[0].Record.UserID)
	assert.Nil(t, got[1].Record, "malformed record is dropped")
	assert.Equal(t, models.ChangeDelete, got[2].Type)
	assert.Nil(t, got[2].Record)
	assert.Equal(t, models.ChangeResync, got[3].Type)
}

func TestGamePlayers_SubscribeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, a := newTestGamePlayers(t, ctrl)

	a.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", adapter.ErrTransport, adapter.ErrSubscriptionRejected))

	_, err := c.Subscribe(context.Background(), "game-42", func(livelist.Event[models.Player]) {})
	assert.ErrorIs(t, err, adapter.ErrSubscriptionRejected)
}

func TestCommunityMembers_JoinRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockCollectionAdapter(ctrl)
	c := newCommunityMembers(a, validators.NewEntityValidator(), annSession, logger.Nop())
	c.now = func() time.Time { return joinTime }

	a.EXPECT().Insert(gomock.Any(), models.CollectionCommunityMembers, models.Row{
		"community_id": "c1",
		"user_id":      "u1",
		"name":         "Ann",
		"joined_at":    joinTime,
	}, false).Return(models.Row{}, nil)
	a.EXPECT().Single(gomock.Any(), models.CollectionCommunities, gomock.Any()).Return(models.Row{"creator_id": "u9"}, nil)

	require.NoError(t, c.Join(context.Background(), "c1", "u1"))
	id, err := c.PrivilegedID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "u9", id)
}

// ── messageCollection ──

func TestMessages_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockCollectionAdapter(ctrl)
	c := newMessages(a, validators.NewEntityValidator(), logger.Nop())

	msg := models.Message{MessageID: "m1", ThreadID: "c1", UserID: "u1", AuthorName: "Ann", Body: "hi", CreatedAt: joinTime}

	a.EXPECT().Insert(gomock.Any(), models.CollectionMessages, gomock.Any(), false).DoAndReturn(
		func(_ context.Context, _ string, row models.Row, _ bool) (models.Row, error) {
			assert.Equal(t, "m1", row["id"])
			assert.Equal(t, "hi", row["body"])
			return row, nil
		})

	stored, err := c.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, msg.MessageID, stored.MessageID)
	assert.True(t, msg.CreatedAt.Equal(stored.CreatedAt))
}

func TestMessages_SendInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newMessages(mock.NewMockCollectionAdapter(ctrl), validators.NewEntityValidator(), logger.Nop())

	_, err := c.Send(context.Background(), models.Message{MessageID: "m1", ThreadID: "c1", UserID: "u1", CreatedAt: joinTime})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyBody)
}

func TestMessages_ListSendsThreadFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockCollectionAdapter(ctrl)
	c := newMessages(a, validators.NewEntityValidator(), logger.Nop())

	a.EXPECT().List(gomock.Any(), models.CollectionMessages, models.NewQuery(models.Eq("thread_id", "c1"))).
		Return(nil, httpErr(adapter.ErrUnauthorized, "token is expired or invalid"))

	_, err := c.List(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── mapAdapterError ──

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"bad request invalid data", httpErr(adapter.ErrBadRequest, "invalid data provided"), ErrInvalidDataProvided},
		{"bad request invalid query", httpErr(adapter.ErrBadRequest, "invalid query"), ErrInvalidQuery},
		{"bad request owner filter", httpErr(adapter.ErrBadRequest, "delete must be filtered by owner"), ErrOwnerFilterRequired},
		{"forbidden", httpErr(adapter.ErrForbidden, "access denied"), ErrAccessDenied},
		{"unknown collection", httpErr(adapter.ErrNotFound, "unknown collection"), ErrUnknownCollection},
		{"not found", httpErr(adapter.ErrNotFound, ""), ErrNotFound},
		{"parent missing", httpErr(adapter.ErrConflict, "parent row not found"), ErrParentNotFound},
		{"conflict", httpErr(adapter.ErrConflict, "row already exists"), ErrAlreadyExists},
		{"bad gateway", httpErr(adapter.ErrBadGateway, ""), ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapAdapterError(tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, adapter.ErrTransport)
		})
	}

	assert.NoError(t, mapAdapterError(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, mapAdapterError(plain))
}
