// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Game is a scheduled pickup game. HostID is the privileged participant of
// the game's roster.
type Game struct {
	GameID    string    `json:"id"`
	HostID    string    `json:"host_id"`
	Title     string    `json:"title"`
	Sport     string    `json:"sport"`
	Location  string    `json:"location"`
	StartsAt  time.Time `json:"starts_at"`
	Capacity  int       `json:"capacity"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// ID returns the game identifier.
func (g Game) ID() string {
	return g.GameID
}

// Player is a single row of a game's roster.
type Player struct {
	GameID     string    `json:"game_id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	SkillLevel int       `json:"skill_level"`
	JoinedAt   time.Time `json:"joined_at"`
}

// ID returns the participant identifier. A user appears at most once per game.
func (p Player) ID() string {
	return p.UserID
}

// GameFilter narrows a games listing. A zero From means "now".
type GameFilter struct {
	Sport string
	From  time.Time
	Limit int
}
