// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = models.Schema{
	Collection: "game_players",
	Table:      "game_players",
	Columns: []models.Column{
		{Name: "game_id", Type: models.TypeText, Required: true},
		{Name: "user_id", Type: models.TypeText, Required: true},
		{Name: "name", Type: models.TypeText},
		{Name: "skill_level", Type: models.TypeInt},
		{Name: "joined_at", Type: models.TypeTime},
	},
	Key:         []string{"game_id", "user_id"},
	OwnerColumn: "user_id",
}

// ── CoerceRow ──

func TestCoerceRow(t *testing.T) {
	row, err := CoerceRow(testSchema, models.Row{
		"game_id":     "g1",
		"user_id":     "u1",
		"skill_level": float64(3),
		"joined_at":   "2026-03-01T18:00:00Z",
	}, true)

	require.NoError(t, err)
	assert.Equal(t, int64(3), row["skill_level"])
	assert.Equal(t, time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC), row["joined_at"])
}

func TestCoerceRow_Errors(t *testing.T) {
	tests := []struct {
		name       string
		row        models.Row
		requireAll bool
		want       error
	}{
		{"empty", models.Row{}, false, ErrEmptyBodyRow},
		{"unknown column", models.Row{"game_id": "g1", "hacker": true}, false, ErrUnknownColumn},
		{"bad int", models.Row{"skill_level": 2.5}, false, ErrInvalidValue},
		{"bad time", models.Row{"joined_at": "yesterday"}, false, ErrInvalidValue},
		{"missing required", models.Row{"game_id": "g1"}, true, ErrMissingColumn},
		{"null required", models.Row{"game_id": "g1", "user_id": nil}, true, ErrMissingColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CoerceRow(testSchema, tt.row, tt.requireAll)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCoerceRow_PartialAllowedWithoutRequireAll(t *testing.T) {
	_, err := CoerceRow(testSchema, models.Row{"game_id": "g1"}, false)
	assert.NoError(t, err)
}

// ── ValidateQuery ──

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query models.Query
		want  error
	}{
		{"eq", models.NewQuery(models.Eq("game_id", "g1")), nil},
		{"in ints", models.NewQuery(models.In("skill_level", "1", "2")), nil},
		{"ilike text", models.NewQuery(models.Compare("name", models.OpILike, "%bo%")), nil},
		{"order", models.NewQuery().OrderBy("joined_at", true), nil},
		{"unknown filter column", models.NewQuery(models.Eq("password", "x")), ErrUnknownColumn},
		{"unknown order column", models.NewQuery().OrderBy("password", false), ErrUnknownColumn},
		{"bad int", models.NewQuery(models.Compare("skill_level", models.OpGt, "high")), ErrInvalidValue},
		{"bad in item", models.NewQuery(models.In("skill_level", "1", "x")), ErrInvalidValue},
		{"ilike on int", models.NewQuery(models.Compare("skill_level", models.OpILike, "1")), ErrOperatorNotText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(testSchema, tt.query)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFilterValue_In(t *testing.T) {
	v, err := FilterValue(testSchema, models.In("skill_level", "1", "3"))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(3)}, v)
}

func TestCoerceRow_DropsZeroDefaulted(t *testing.T) {
	schema := testSchema
	schema.Columns = append([]models.Column(nil), testSchema.Columns...)
	schema.Columns[4].Defaulted = true

	row, err := CoerceRow(schema, models.Row{
		"game_id":   "g1",
		"user_id":   "u1",
		"joined_at": "0001-01-01T00:00:00Z",
	}, true)

	require.NoError(t, err)
	assert.NotContains(t, row, "joined_at")
}
