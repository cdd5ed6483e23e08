// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-pickup/internal/app"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userFrom(ctx context.Context) (string, bool) {
	return utils.GetUserIDFromContext(ctx)
}

// ── list ──

func TestList_ParsesQuery(t *testing.T) {
	th := newTestHandler(t)

	want := models.Query{
		Filters: []models.Filter{models.Eq("game_id", "g1")},
		Order:   []models.Order{{Column: "joined_at"}},
		Limit:   5,
	}
	th.collections.EXPECT().List(gomock.Any(), models.CollectionGamePlayers, want).
		Return([]models.Row{{"game_id": "g1", "user_id": "u1"}}, nil)

	rec := th.do(http.MethodGet, "/rest/v1/game_players?game_id=eq.g1&order=joined_at.asc&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"game_id":"g1","user_id":"u1"}]`, rec.Body.String())
}

func TestList_MalformedQuery(t *testing.T) {
	th := newTestHandler(t)

	for _, target := range []string{
		"/rest/v1/games?sport=like.foot",
		"/rest/v1/games?order=starts_at.sideways",
		"/rest/v1/games?limit=-1",
	} {
		rec := th.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, app.MsgInvalidQuery+"\n", rec.Body.String(), target)
	}
}

func TestList_Gzip(t *testing.T) {
	th := newTestHandler(t)
	th.collections.EXPECT().List(gomock.Any(), "games", gomock.Any()).Return([]models.Row{{"id": "g1"}}, nil)

	rec := th.do(http.MethodGet, "/rest/v1/games", "", "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"g1"}]`, string(body))
}

// ── insert ──

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		prefer string
		upsert bool
	}{
		{"plain", "return=representation", false},
		{"merge duplicates", "return=representation,resolution=merge-duplicates", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.collections.EXPECT().
				Insert(gomock.Any(), models.CollectionPreferences, models.Row{"user_id": "u1", "display_name": "Ann"}, tt.upsert).
				Return(models.Row{"user_id": "u1", "display_name": "Ann"}, nil)

			rec := th.do(http.MethodPost, "/rest/v1/preferences", `{"user_id":"u1","display_name":"Ann"}`, headerPrefer, tt.prefer)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.JSONEq(t, `[{"user_id":"u1","display_name":"Ann"}]`, rec.Body.String())
		})
	}
}

func TestInsert_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	for _, body := range []string{`{"user_id":`, `null`, `[1,2]`} {
		rec := th.do(http.MethodPost, "/rest/v1/games", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, app.MsgInvalidDataProvided+"\n", rec.Body.String(), body)
	}
}

func TestInsert_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{fmt.Errorf("%w: skill_level", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{fmt.Errorf("%w: user_id must be the caller", service.ErrAccessDenied), http.StatusForbidden, app.MsgAccessDenied},
		{service.ErrNoUserID, http.StatusUnauthorized, app.MsgNoUserIDProvided},
		{fmt.Errorf("%w: \"teams\"", store.ErrUnknownCollection), http.StatusNotFound, app.MsgUnknownCollection},
		{fmt.Errorf("insert: %w", store.ErrAlreadyExists), http.StatusConflict, app.MsgAlreadyExists},
		{fmt.Errorf("insert: %w", store.ErrParentNotFound), http.StatusConflict, app.MsgParentNotFound},
		{fmt.Errorf("insert: %w", store.ErrConstraintViolation), http.StatusBadRequest, app.MsgConstraintViolation},
		{fmt.Errorf("insert: %w", store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			th := newTestHandler(t)
			th.collections.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil, tt.err)

			rec := th.do(http.MethodPost, "/rest/v1/game_players", `{"game_id":"g1"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body+"\n", rec.Body.String())
		})
	}
}

// ── delete ──

func TestDelete(t *testing.T) {
	query := models.Query{Filters: []models.Filter{models.Eq("game_id", "g1"), models.Eq("user_id", "u1")}}
	deleted := []models.Row{{"game_id": "g1", "user_id": "u1"}}

	t.Run("no content", func(t *testing.T) {
		th := newTestHandler(t)
		th.collections.EXPECT().Delete(gomock.Any(), models.CollectionGamePlayers, query).Return(deleted, nil)

		rec := th.do(http.MethodDelete, "/rest/v1/game_players?user_id=eq.u1&game_id=eq.g1", "", "Accept-Encoding", "gzip")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("representation", func(t *testing.T) {
		th := newTestHandler(t)
		th.collections.EXPECT().Delete(gomock.Any(), models.CollectionGamePlayers, query).Return(deleted, nil)

		rec := th.do(http.MethodDelete, "/rest/v1/game_players?user_id=eq.u1&game_id=eq.g1", "", headerPrefer, preferRepresentation)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"game_id":"g1","user_id":"u1"}]`, rec.Body.String())
	})

	t.Run("owner filter required", func(t *testing.T) {
		th := newTestHandler(t)
		th.collections.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrOwnerFilterRequired)

		rec := th.do(http.MethodDelete, "/rest/v1/game_players", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgOwnerFilterRequired+"\n", rec.Body.String())
	})
}
