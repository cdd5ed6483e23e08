// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/mock"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGoals(t *testing.T) (*clientGoalService, *mock.MockGoalRepository, *mock.MockCollectionAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockGoalRepository(ctrl)
	a := mock.NewMockCollectionAdapter(ctrl)

	s := NewClientGoalService(repo, a, logger.Nop()).(*clientGoalService)
	// a Saturday; its week is [Mon 12th, Mon 19th)
	s.now = func() time.Time { return joinTime }
	return s, repo, a
}

var weeklyFootball = models.Goal{GoalID: 1, UserID: "u1", Title: "3 a week", Sport: "football", TargetGames: 3, Period: models.PeriodWeek}

// ── Create / List / Delete ──

func TestGoals_Create(t *testing.T) {
	s, repo, _ := newTestGoals(t)

	repo.EXPECT().CreateGoal(gomock.Any(), weeklyFootball).Return(weeklyFootball, nil)

	got, err := s.Create(context.Background(), weeklyFootball)
	require.NoError(t, err)
	assert.Equal(t, weeklyFootball, got)
}

func TestGoals_Create_Invalid(t *testing.T) {
	s, _, _ := newTestGoals(t)

	bad := weeklyFootball
	bad.Period = "fortnight"

	_, err := s.Create(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPeriod)
}

func TestGoals_ListAndDelete(t *testing.T) {
	s, repo, _ := newTestGoals(t)

	repo.EXPECT().ListGoals(gomock.Any(), "u1").Return([]models.Goal{weeklyFootball}, nil)
	repo.EXPECT().DeleteGoal(gomock.Any(), "u1", int64(1)).Return(nil)

	goals, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, goals, 1)
	require.NoError(t, s.Delete(context.Background(), "u1", 1))
}

// ── Progress ──

func TestGoals_Progress(t *testing.T) {
	s, _, a := newTestGoals(t)

	a.EXPECT().List(gomock.Any(), models.CollectionGamePlayers, models.NewQuery(models.Eq("user_id", "u1"))).
		Return([]models.Row{
			{"game_id": "g1", "user_id": "u1"},
			{"game_id": "g2", "user_id": "u1"},
			{"game_id": "g3", "user_id": "u1"},
		}, nil)

	want := models.NewQuery(
		models.In("id", "g1", "g2", "g3"),
		models.Compare("starts_at", models.OpGte, "2026-10-12T00:00:00Z"),
		models.Compare("starts_at", models.OpLt, "2026-10-19T00:00:00Z"),
		models.Eq("sport", "football"),
	)
	a.EXPECT().List(gomock.Any(), models.CollectionGames, want).
		Return([]models.Row{{"id": "g1"}, {"id": "g3"}}, nil)

	progress, err := s.Progress(context.Background(), weeklyFootball)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Played)
	assert.False(t, progress.Done())
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), progress.PeriodStart)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), progress.PeriodEnd)
}

func TestGoals_Progress_NoGamesJoined(t *testing.T) {
	s, _, a := newTestGoals(t)

	a.EXPECT().List(gomock.Any(), models.CollectionGamePlayers, gomock.Any()).Return(nil, nil)

	progress, err := s.Progress(context.Background(), weeklyFootball)
	require.NoError(t, err)
	assert.Zero(t, progress.Played)
}

func TestGoals_Progress_AdapterError(t *testing.T) {
	s, _, a := newTestGoals(t)

	a.EXPECT().List(gomock.Any(), models.CollectionGamePlayers, gomock.Any()).
		Return(nil, httpErr(adapter.ErrUnauthorized, "token is expired or invalid"))

	_, err := s.Progress(context.Background(), weeklyFootball)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
