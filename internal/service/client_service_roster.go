// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
)

type clientRosterService struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientRosterService(a adapter.CollectionAdapter, logger *logger.Logger) ClientRosterService {
	return &clientRosterService{
		adapter:   a,
		validator: validators.NewEntityValidator(),
		logger:    logger,
	}
}

func (s *clientRosterService) OpenGame(session models.Session) *livelist.Roster[models.Player] {
	source := newGamePlayers(s.adapter, s.validator, session, s.logger)
	return livelist.NewRoster[models.Player](source, session.UserID, s.logger)
}

func (s *clientRosterService) OpenCommunity(session models.Session) *livelist.Roster[models.Member] {
	source := newCommunityMembers(s.adapter, s.validator, session, s.logger)
	return livelist.NewRoster[models.Member](source, session.UserID, s.logger)
}

type clientThreadService struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	ids       utils.IDGenerator
	logger    *logger.Logger
}

func NewClientThreadService(a adapter.CollectionAdapter, ids utils.IDGenerator, logger *logger.Logger) ClientThreadService {
	return &clientThreadService{
		adapter:   a,
		validator: validators.NewEntityValidator(),
		ids:       ids,
		logger:    logger,
	}
}

func (s *clientThreadService) OpenThread(session models.Session) *livelist.Thread {
	return livelist.NewThread(newMessages(s.adapter, s.validator, s.logger), session.UserID, session.DisplayName, s.ids, s.logger)
}
