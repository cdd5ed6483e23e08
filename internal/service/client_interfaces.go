// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService resolves the acting user of the client process.
type ClientSessionService interface {
	// Session reads the user id from the configured bearer token and fills
	// the display name and skill level from the user's preferences.
	Session(ctx context.Context) (models.Session, error)
}

// ClientRosterService opens live rosters. The returned lists are unbound;
// the caller binds them to a game or community and closes them when done.
type ClientRosterService interface {
	OpenGame(session models.Session) *livelist.Roster[models.Player]
	OpenCommunity(session models.Session) *livelist.Roster[models.Member]
}

// ClientThreadService opens live chat threads. A thread id is the id of the
// game or community the chat belongs to.
type ClientThreadService interface {
	OpenThread(session models.Session) *livelist.Thread
}

// ClientDiscoveryService browses and creates games and communities.
type ClientDiscoveryService interface {
	Games(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	Game(ctx context.Context, gameID string) (models.Game, error)
	Communities(ctx context.Context, sport string) ([]models.Community, error)

	// CreateGame stores game hosted by the session user and adds the host
	// to its roster.
	CreateGame(ctx context.Context, session models.Session, game models.Game) (models.Game, error)

	// CreateCommunity stores community created by the session user and adds
	// the creator as its first member.
	CreateCommunity(ctx context.Context, session models.Session, community models.Community) (models.Community, error)
}

// ClientPreferencesService reads and writes the per-user profile.
type ClientPreferencesService interface {
	// Get returns the stored preferences or defaults when none exist yet.
	Get(ctx context.Context, userID string) (models.Preferences, error)
	Save(ctx context.Context, prefs models.Preferences) (models.Preferences, error)
}

// ClientGoalService manages participation goals kept in the local database.
type ClientGoalService interface {
	Create(ctx context.Context, goal models.Goal) (models.Goal, error)
	List(ctx context.Context, userID string) ([]models.Goal, error)
	Delete(ctx context.Context, userID string, goalID int64) error

	// Progress counts the games the goal's user joined whose start falls in
	// the current period of the goal.
	Progress(ctx context.Context, goal models.Goal) (models.GoalProgress, error)
}
