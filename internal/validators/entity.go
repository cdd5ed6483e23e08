// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pickup/models"
)

// Field names accepted by [EntityValidator]. They match the JSON column
// names of the entities.
const (
	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldGameID      = "game_id"
	FieldCommunityID = "community_id"
	FieldThreadID    = "thread_id"
	FieldName        = "name"
	FieldTitle       = "title"
	FieldBody        = "body"
	FieldSkillLevel  = "skill_level"
	FieldHostID      = "host_id"
	FieldCreatorID   = "creator_id"
	FieldCapacity    = "capacity"
	FieldCoordinates = "coordinates"
	FieldStartsAt    = "starts_at"
	FieldCreatedAt   = "created_at"
	FieldMaxDistance = "max_distance_km"
	FieldTargetGames = "target_games"
	FieldPeriod      = "period"
)

const (
	MaxSkillLevel  = 5
	MaxMessageSize = 2000
)

var allowedPeriods = []models.GoalPeriod{
	models.PeriodWeek,
	models.PeriodMonth,
}

// EntityValidator validates the domain entities of the models package.
// Without explicit fields every field relevant to the entity is checked.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Player:
		return v.validatePlayer(value, fields...)
	case *models.Player:
		return v.validatePlayer(*value, fields...)

	case models.Member:
		return v.validateMember(value, fields...)
	case *models.Member:
		return v.validateMember(*value, fields...)

	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)

	case models.Game:
		return v.validateGame(value, fields...)
	case *models.Game:
		return v.validateGame(*value, fields...)

	case models.Community:
		return v.validateCommunity(value, fields...)
	case *models.Community:
		return v.validateCommunity(*value, fields...)

	case models.Preferences:
		return v.validatePreferences(value, fields...)
	case *models.Preferences:
		return v.validatePreferences(*value, fields...)

	case models.Goal:
		return v.validateGoal(value, fields...)
	case *models.Goal:
		return v.validateGoal(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validSkill(level int) bool {
	// 0 means the player has not rated themselves
	return level >= 0 && level <= MaxSkillLevel
}

func (v *EntityValidator) validatePlayer(p models.Player, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGameID, FieldUserID, FieldSkillLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldGameID:
			if blank(p.GameID) {
				return ErrInvalidParentID
			}
		case FieldUserID:
			if blank(p.UserID) {
				return ErrInvalidUserID
			}
		case FieldName:
			if blank(p.Name) {
				return ErrEmptyName
			}
		case FieldSkillLevel:
			if !validSkill(p.SkillLevel) {
				return ErrInvalidSkillLevel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateMember(m models.Member, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCommunityID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldCommunityID:
			if blank(m.CommunityID) {
				return ErrInvalidParentID
			}
		case FieldUserID:
			if blank(m.UserID) {
				return ErrInvalidUserID
			}
		case FieldName:
			if blank(m.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateMessage(m models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldThreadID, FieldUserID, FieldBody, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(m.MessageID) {
				return ErrInvalidID
			}
		case FieldThreadID:
			if blank(m.ThreadID) {
				return ErrInvalidParentID
			}
		case FieldUserID:
			if blank(m.UserID) {
				return ErrInvalidUserID
			}
		case FieldBody:
			if blank(m.Body) {
				return ErrEmptyBody
			}
			if utf8.RuneCountInString(m.Body) > MaxMessageSize {
				return ErrBodyTooLong
			}
		case FieldCreatedAt:
			if m.CreatedAt.IsZero() {
				return ErrMissingTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateGame(g models.Game, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldHostID, FieldTitle, FieldCapacity, FieldCoordinates, FieldStartsAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(g.GameID) {
				return ErrInvalidID
			}
		case FieldHostID:
			if blank(g.HostID) {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if blank(g.Title) {
				return ErrEmptyTitle
			}
		case FieldCapacity:
			if g.Capacity < 0 {
				return ErrInvalidCapacity
			}
		case FieldCoordinates:
			if g.Latitude < -90 || g.Latitude > 90 || g.Longitude < -180 || g.Longitude > 180 {
				return ErrInvalidCoordinates
			}
		case FieldStartsAt:
			if g.StartsAt.IsZero() {
				return ErrMissingTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateCommunity(c models.Community, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldCreatorID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(c.CommunityID) {
				return ErrInvalidID
			}
		case FieldCreatorID:
			if blank(c.CreatorID) {
				return ErrInvalidUserID
			}
		case FieldName:
			if blank(c.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validatePreferences(p models.Preferences, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSkillLevel, FieldMaxDistance}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if blank(p.UserID) {
				return ErrInvalidUserID
			}
		case FieldSkillLevel:
			if !validSkill(p.SkillLevel) {
				return ErrInvalidSkillLevel
			}
		case FieldMaxDistance:
			if p.MaxDistanceKM < 0 {
				return ErrInvalidDistance
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateGoal(g models.Goal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldTargetGames, FieldPeriod}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if g.GoalID <= 0 {
				return ErrInvalidID
			}
		case FieldUserID:
			if blank(g.UserID) {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if blank(g.Title) {
				return ErrEmptyTitle
			}
		case FieldTargetGames:
			if g.TargetGames <= 0 {
				return ErrInvalidTarget
			}
		case FieldPeriod:
			if !isValidPeriod(g.Period) {
				return ErrInvalidPeriod
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidPeriod(p models.GoalPeriod) bool {
	for _, allowed := range allowedPeriods {
		if p == allowed {
			return true
		}
	}
	return false
}
