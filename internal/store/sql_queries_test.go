// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaOf(t *testing.T, collection string) models.Schema {
	t.Helper()
	schema, err := DefaultSchemas().Get(collection)
	require.NoError(t, err)
	return schema
}

// ── buildSelectQuery ──

func TestBuildSelectQuery(t *testing.T) {
	players := schemaOf(t, models.CollectionGamePlayers)
	games := schemaOf(t, models.CollectionGames)

	tests := []struct {
		name       string
		schema     models.Schema
		query      models.Query
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "default order, single eq filter",
			schema: players,
			query:  models.NewQuery(models.Eq("game_id", "g1")),
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Equal(t, "SELECT game_id, user_id, name, skill_level, joined_at FROM game_players WHERE (game_id = $1) ORDER BY joined_at ASC", query)
				assert.Equal(t, []any{"g1"}, args)
			},
		},
		{
			name:   "explicit order and limit",
			schema: games,
			query:  models.NewQuery(models.Eq("sport", "tennis")).OrderBy("starts_at", true).WithLimit(5),
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "ORDER BY starts_at DESC")
				assert.Contains(t, query, "LIMIT 5")
				assert.Equal(t, []any{"tennis"}, args)
			},
		},
		{
			name:   "typed comparison and in list",
			schema: games,
			query: models.NewQuery(
				models.Compare("starts_at", models.OpGte, "2026-03-01T00:00:00Z"),
				models.In("id", "g1", "g2"),
				models.Compare("capacity", models.OpLt, "10"),
			),
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "starts_at >= $1")
				assert.Contains(t, query, "id IN ($2,$3)")
				assert.Contains(t, query, "capacity < $4")
				require.Len(t, args, 4)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), args[0])
				assert.Equal(t, int64(10), args[3])
			},
		},
		{
			name:   "neq and ilike",
			schema: games,
			query:  models.NewQuery(models.Compare("host_id", models.OpNeq, "u1"), models.Compare("title", models.OpILike, "%five%")),
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "host_id <> $1")
				assert.Contains(t, query, "title ILIKE $2")
				assert.Equal(t, []any{"u1", "%five%"}, args)
			},
		},
		{
			name:   "no filters",
			schema: schemaOf(t, models.CollectionPreferences),
			query:  models.Query{},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.True(t, strings.HasPrefix(query, "SELECT user_id, display_name"))
				assert.NotContains(t, query, "ORDER BY")
				assert.Empty(t, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectQuery(tt.schema, tt.query)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildSelectQuery_Errors(t *testing.T) {
	players := schemaOf(t, models.CollectionGamePlayers)

	_, _, err := buildSelectQuery(players, models.NewQuery(models.Eq("password", "x")))
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.ErrorIs(t, err, validators.ErrUnknownColumn)

	_, _, err = buildSelectQuery(players, models.NewQuery().OrderBy("password", false))
	assert.ErrorIs(t, err, validators.ErrUnknownColumn)

	_, _, err = buildSelectQuery(players, models.NewQuery(models.Compare("skill_level", models.OpGt, "lots")))
	assert.ErrorIs(t, err, validators.ErrInvalidValue)
}

// ── buildInsertQuery ──

func TestBuildInsertQuery_Plain(t *testing.T) {
	players := schemaOf(t, models.CollectionGamePlayers)

	query, args, err := buildInsertQuery(players, models.Row{"user_id": "u1", "game_id": "g1", "skill_level": int64(3)}, false)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO game_players (game_id,skill_level,user_id) VALUES ($1,$2,$3) "+
			"RETURNING game_id, user_id, name, skill_level, joined_at, (xmax = 0) AS inserted",
		query)
	assert.Equal(t, []any{"g1", int64(3), "u1"}, args)
}

func TestBuildInsertQuery_Upsert(t *testing.T) {
	prefs := schemaOf(t, models.CollectionPreferences)

	query, _, err := buildInsertQuery(prefs, models.Row{"user_id": "u1", "display_name": "Bob", "skill_level": int64(2)}, true)
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET display_name = EXCLUDED.display_name, skill_level = EXCLUDED.skill_level WHERE")
	assert.NotContains(t, query, "SET user_id = EXCLUDED.user_id")
	assert.Contains(t, query, "(xmax = 0) AS inserted")
}

func TestBuildInsertQuery_UpsertKeepsOwner(t *testing.T) {
	games := schemaOf(t, models.CollectionGames)

	query, args, err := buildInsertQuery(games, models.Row{"id": "someone-elses-game", "host_id": "u2", "title": "mine now"}, true)
	require.NoError(t, err)

	assert.Contains(t, query,
		"ON CONFLICT (id) DO UPDATE SET host_id = EXCLUDED.host_id, title = EXCLUDED.title WHERE games.host_id = EXCLUDED.host_id RETURNING")
	assert.Equal(t, []any{"u2", "someone-elses-game", "mine now"}, args)

	plain, _, err := buildInsertQuery(games, models.Row{"id": "g1", "host_id": "u2", "title": "t"}, false)
	require.NoError(t, err)
	assert.NotContains(t, plain, "WHERE")
}

func TestBuildInsertQuery_UpsertKeyOnly(t *testing.T) {
	players := schemaOf(t, models.CollectionGamePlayers)

	query, _, err := buildInsertQuery(players, models.Row{"user_id": "u1", "game_id": "g1"}, true)
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (game_id, user_id) DO UPDATE SET game_id = EXCLUDED.game_id")
}

func TestBuildInsertQuery_Errors(t *testing.T) {
	players := schemaOf(t, models.CollectionGamePlayers)

	_, _, err := buildInsertQuery(players, models.Row{}, false)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)

	_, _, err = buildInsertQuery(players, models.Row{"is_admin": true}, false)
	assert.ErrorIs(t, err, validators.ErrUnknownColumn)
}

// ── buildDeleteQuery ──

func TestBuildDeleteQuery(t *testing.T) {
	players := schemaOf(t, models.CollectionGamePlayers)

	query, args, err := buildDeleteQuery(players, models.NewQuery(models.Eq("game_id", "game-42"), models.Eq("user_id", "u1")))
	require.NoError(t, err)

	assert.Equal(t,
		"DELETE FROM game_players WHERE (game_id = $1 AND user_id = $2) RETURNING game_id, user_id, name, skill_level, joined_at",
		query)
	assert.Equal(t, []any{"game-42", "u1"}, args)
}
