// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names exposed by the REST and realtime endpoints.
const (
	CollectionGames            = "games"
	CollectionGamePlayers      = "game_players"
	CollectionCommunities      = "communities"
	CollectionCommunityMembers = "community_members"
	CollectionMessages         = "messages"
	CollectionPreferences      = "preferences"
)
