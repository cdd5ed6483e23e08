// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
)

const (
	defaultGamesLimit = 50
	creatorRole       = "creator"
)

type clientDiscoveryService struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientDiscoveryService(a adapter.CollectionAdapter, ids utils.IDGenerator, logger *logger.Logger) ClientDiscoveryService {
	return &clientDiscoveryService{
		adapter:   a,
		validator: validators.NewEntityValidator(),
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

// Games lists upcoming games ordered by start time.
func (s *clientDiscoveryService) Games(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	from := filter.From
	if from.IsZero() {
		from = s.now()
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultGamesLimit
	}

	query := models.NewQuery(models.Compare(validators.FieldStartsAt, models.OpGte, models.FormatValue(from.UTC()))).
		OrderBy(validators.FieldStartsAt, false).
		WithLimit(limit)
	if sport := strings.TrimSpace(filter.Sport); sport != "" {
		query = query.Where(models.Eq("sport", sport))
	}

	rows, err := s.adapter.List(ctx, models.CollectionGames, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return validators.DecodeRows[models.Game](ctx, s.validator, rows)
}

func (s *clientDiscoveryService) Game(ctx context.Context, gameID string) (models.Game, error) {
	row, err := s.adapter.Single(ctx, models.CollectionGames, models.NewQuery(models.Eq(validators.FieldID, gameID)))
	if err != nil {
		return models.Game{}, mapAdapterError(err)
	}

	return validators.DecodeRow[models.Game](ctx, s.validator, row)
}

func (s *clientDiscoveryService) Communities(ctx context.Context, sport string) ([]models.Community, error) {
	query := models.Query{}.OrderBy(validators.FieldName, false)
	if sport = strings.TrimSpace(sport); sport != "" {
		query = query.Where(models.Eq("sport", sport))
	}

	rows, err := s.adapter.List(ctx, models.CollectionCommunities, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return validators.DecodeRows[models.Community](ctx, s.validator, rows)
}

func (s *clientDiscoveryService) CreateGame(ctx context.Context, session models.Session, game models.Game) (models.Game, error) {
	log := logger.FromContext(ctx)

	game.GameID = s.ids.Generate()
	game.HostID = session.UserID
	game.CreatedAt = time.Time{}
	if err := s.validator.Validate(ctx, game); err != nil {
		return models.Game{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.insert(ctx, models.CollectionGames, game)
	if err != nil {
		log.Err(err).Str("func", "*clientDiscoveryService.CreateGame").Str("title", game.Title).Msg("failed to create game")
		return models.Game{}, err
	}

	stored, err := validators.DecodeRow[models.Game](ctx, s.validator, created)
	if err != nil {
		return models.Game{}, err
	}

	host := models.Player{
		GameID:     stored.GameID,
		UserID:     session.UserID,
		Name:       session.DisplayName,
		SkillLevel: session.SkillLevel,
		JoinedAt:   s.now().UTC(),
	}
	if _, err = s.insert(ctx, models.CollectionGamePlayers, host); err != nil {
		log.Err(err).Str("func", "*clientDiscoveryService.CreateGame").Str("game_id", stored.GameID).Msg("failed to add host to roster")
		return stored, fmt.Errorf("game created, joining it failed: %w", err)
	}

	return stored, nil
}

func (s *clientDiscoveryService) CreateCommunity(ctx context.Context, session models.Session, community models.Community) (models.Community, error) {
	log := logger.FromContext(ctx)

	community.CommunityID = s.ids.Generate()
	community.CreatorID = session.UserID
	community.CreatedAt = time.Time{}
	if err := s.validator.Validate(ctx, community); err != nil {
		return models.Community{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.insert(ctx, models.CollectionCommunities, community)
	if err != nil {
		log.Err(err).Str("func", "*clientDiscoveryService.CreateCommunity").Str("name", community.Name).Msg("failed to create community")
		return models.Community{}, err
	}

	stored, err := validators.DecodeRow[models.Community](ctx, s.validator, created)
	if err != nil {
		return models.Community{}, err
	}

	creator := models.Member{
		CommunityID: stored.CommunityID,
		UserID:      session.UserID,
		Name:        session.DisplayName,
		Role:        creatorRole,
		JoinedAt:    s.now().UTC(),
	}
	if _, err = s.insert(ctx, models.CollectionCommunityMembers, creator); err != nil {
		log.Err(err).Str("func", "*clientDiscoveryService.CreateCommunity").Str("community_id", stored.CommunityID).Msg("failed to add creator to members")
		return stored, fmt.Errorf("community created, joining it failed: %w", err)
	}

	return stored, nil
}

func (s *clientDiscoveryService) insert(ctx context.Context, collection string, entity any) (models.Row, error) {
	row, err := validators.EncodeRow(entity)
	if err != nil {
		return nil, err
	}

	stored, err := s.adapter.Insert(ctx, collection, row, false)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return stored, nil
}
