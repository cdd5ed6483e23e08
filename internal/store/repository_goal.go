// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/models"
	sq "github.com/Masterminds/squirrel"
)

var goalColumns = []string{"id", "user_id", "title", "sport", "target_games", "period", "created_at"}

// goalRepository is the SQLite implementation of [GoalRepository].
type goalRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	return &goalRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (r *goalRepository) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	goal.CreatedAt = r.now().UTC()

	statement, args, err := sq.Insert("goals").
		Columns("user_id", "title", "sport", "target_games", "period", "created_at").
		Values(goal.UserID, goal.Title, goal.Sport, goal.TargetGames, string(goal.Period), goal.CreatedAt).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, statement, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*goalRepository.CreateGoal").Str("user_id", goal.UserID).Msg("failed to insert goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if goal.GoalID, err = result.LastInsertId(); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goal, nil
}

func (r *goalRepository) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	statement, args, err := sq.Select(goalColumns...).
		From("goals").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, statement, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*goalRepository.ListGoals").Str("user_id", userID).Msg("failed to query goals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		var (
			goal   models.Goal
			period string
		)
		if err = rows.Scan(&goal.GoalID, &goal.UserID, &goal.Title, &goal.Sport, &goal.TargetGames, &period, &goal.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		goal.Period = models.GoalPeriod(period)
		goals = append(goals, goal)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, nil
}

func (r *goalRepository) DeleteGoal(ctx context.Context, userID string, goalID int64) error {
	statement, args, err := sq.Delete("goals").
		Where(sq.Eq{"id": goalID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, statement, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*goalRepository.DeleteGoal").Int64("goal_id", goalID).Msg("failed to delete goal")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
