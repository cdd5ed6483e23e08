// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
)

type clientGoalService struct {
	goals     store.GoalRepository
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientGoalService(goals store.GoalRepository, a adapter.CollectionAdapter, logger *logger.Logger) ClientGoalService {
	return &clientGoalService{
		goals:     goals,
		adapter:   a,
		validator: validators.NewEntityValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientGoalService) Create(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if err := s.validator.Validate(ctx, goal); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.goals.CreateGoal(ctx, goal)
}

func (s *clientGoalService) List(ctx context.Context, userID string) ([]models.Goal, error) {
	return s.goals.ListGoals(ctx, userID)
}

func (s *clientGoalService) Delete(ctx context.Context, userID string, goalID int64) error {
	return s.goals.DeleteGoal(ctx, userID, goalID)
}

// Progress is computed from the remote rosters: the user's game_players rows
// give the joined games, which are then counted when they start inside the
// period and match the goal's sport.
func (s *clientGoalService) Progress(ctx context.Context, goal models.Goal) (models.GoalProgress, error) {
	start, end := goal.Period.Bounds(s.now())
	progress := models.GoalProgress{Goal: goal, PeriodStart: start, PeriodEnd: end}

	rows, err := s.adapter.List(ctx, models.CollectionGamePlayers, models.NewQuery(models.Eq(validators.FieldUserID, goal.UserID)))
	if err != nil {
		return progress, mapAdapterError(err)
	}

	joined, err := validators.DecodeRows[models.Player](ctx, s.validator, rows)
	if err != nil {
		return progress, err
	}
	if len(joined) == 0 {
		return progress, nil
	}

	ids := make([]string, 0, len(joined))
	for _, p := range joined {
		ids = append(ids, p.GameID)
	}

	query := models.NewQuery(
		models.In(validators.FieldID, ids...),
		models.Compare(validators.FieldStartsAt, models.OpGte, models.FormatValue(start)),
		models.Compare(validators.FieldStartsAt, models.OpLt, models.FormatValue(end)),
	)
	if goal.Sport != "" {
		query = query.Where(models.Eq("sport", goal.Sport))
	}

	games, err := s.adapter.List(ctx, models.CollectionGames, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientGoalService.Progress").Int64("goal_id", goal.GoalID).Msg("failed to count games")
		return progress, mapAdapterError(err)
	}

	progress.Played = len(games)
	return progress, nil
}
