// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
)

const defaultMaxDistanceKM = 10

type clientPreferencesService struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientPreferencesService(a adapter.CollectionAdapter, logger *logger.Logger) ClientPreferencesService {
	return &clientPreferencesService{
		adapter:   a,
		validator: validators.NewEntityValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// DefaultPreferences is what a user without a stored profile gets.
func DefaultPreferences(userID string) models.Preferences {
	return models.Preferences{
		UserID:        userID,
		MaxDistanceKM: defaultMaxDistanceKM,
		Notifications: true,
	}
}

func (s *clientPreferencesService) Get(ctx context.Context, userID string) (models.Preferences, error) {
	row, err := s.adapter.Single(ctx, models.CollectionPreferences, models.NewQuery(models.Eq(validators.FieldUserID, userID)))
	if errors.Is(err, adapter.ErrNotFound) {
		return DefaultPreferences(userID), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientPreferencesService.Get").Str("user_id", userID).Msg("failed to load preferences")
		return models.Preferences{}, mapAdapterError(err)
	}

	return validators.DecodeRow[models.Preferences](ctx, s.validator, row)
}

// Save upserts prefs keyed by user id.
func (s *clientPreferencesService) Save(ctx context.Context, prefs models.Preferences) (models.Preferences, error) {
	if err := s.validator.Validate(ctx, prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	prefs.UpdatedAt = s.now().UTC()

	row, err := validators.EncodeRow(prefs)
	if err != nil {
		return models.Preferences{}, err
	}

	stored, err := s.adapter.Insert(ctx, models.CollectionPreferences, row, true)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientPreferencesService.Save").Str("user_id", prefs.UserID).Msg("failed to save preferences")
		return models.Preferences{}, mapAdapterError(err)
	}

	return validators.DecodeRow[models.Preferences](ctx, s.validator, stored)
}

type clientSessionService struct {
	token       string
	preferences ClientPreferencesService
	logger      *logger.Logger
}

func NewClientSessionService(token string, preferences ClientPreferencesService, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		token:       token,
		preferences: preferences,
		logger:      logger,
	}
}

func (s *clientSessionService) Session(ctx context.Context) (models.Session, error) {
	if s.token == "" {
		return models.Session{}, ErrNoSession
	}

	userID, err := utils.ParseUserIDFromJWT(s.token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	prefs, err := s.preferences.Get(ctx, userID)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		UserID:      userID,
		DisplayName: prefs.DisplayName,
		SkillLevel:  prefs.SkillLevel,
	}
	if session.DisplayName == "" {
		session.DisplayName = userID
	}

	return session, nil
}
