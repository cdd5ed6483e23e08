// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// AverageSkill returns the mean skill level of the roster with one decimal,
// or an empty string for an empty roster.
func AverageSkill(players []Player) string {
	if len(players) == 0 {
		return ""
	}

	total := 0
	for _, p := range players {
		total += p.SkillLevel
	}

	return strconv.FormatFloat(float64(total)/float64(len(players)), 'f', 1, 64)
}

// OpenSpots returns how many players can still join, never below zero.
// A zero capacity means the game is unlimited and -1 is returned.
func OpenSpots(game Game, players int) int {
	if game.Capacity <= 0 {
		return -1
	}
	if players >= game.Capacity {
		return 0
	}
	return game.Capacity - players
}
