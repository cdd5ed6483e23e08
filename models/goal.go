// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GoalPeriod is the window a participation goal is measured over.
type GoalPeriod string

const (
	PeriodWeek  GoalPeriod = "week"
	PeriodMonth GoalPeriod = "month"
)

// Goal is a participation goal kept in the client's local store, e.g.
// "play 3 football games a week".
type Goal struct {
	GoalID      int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Sport       string     `json:"sport"`
	TargetGames int        `json:"target_games"`
	Period      GoalPeriod `json:"period"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GoalProgress is a goal together with the number of games counted towards
// it in the current period.
type GoalProgress struct {
	Goal        Goal
	Played      int
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Done reports whether the target has been reached.
func (p GoalProgress) Done() bool {
	return p.Played >= p.Goal.TargetGames
}

// Bounds returns the half-open window [start, end) of the period containing
// now. Weeks start on Monday.
func (p GoalPeriod) Bounds(now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	default:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	}
}
