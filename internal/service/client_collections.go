// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
)

// membershipCollection is a typed view of a membership collection such as
// game_players. Every row read from the adapter passes the validator before
// it becomes an entity.
type membershipCollection[E livelist.Entity] struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator

	collection       string
	parentColumn     string
	parentCollection string
	privilegedColumn string

	// joinRow builds the row inserted by Join.
	joinRow func(parentKey, actingUserID string, now time.Time) models.Row
	now     func() time.Time

	logger *logger.Logger
}

func newGamePlayers(a adapter.CollectionAdapter, v validators.Validator, session models.Session, log *logger.Logger) *membershipCollection[models.Player] {
	return &membershipCollection[models.Player]{
		adapter:          a,
		validator:        v,
		collection:       models.CollectionGamePlayers,
		parentColumn:     validators.FieldGameID,
		parentCollection: models.CollectionGames,
		privilegedColumn: validators.FieldHostID,
		joinRow: func(gameID, userID string, now time.Time) models.Row {
			return models.Row{
				"game_id":     gameID,
				"user_id":     userID,
				"name":        session.DisplayName,
				"skill_level": session.SkillLevel,
				"joined_at":   now,
			}
		},
		now:    time.Now,
		logger: log,
	}
}

func newCommunityMembers(a adapter.CollectionAdapter, v validators.Validator, session models.Session, log *logger.Logger) *membershipCollection[models.Member] {
	return &membershipCollection[models.Member]{
		adapter:          a,
		validator:        v,
		collection:       models.CollectionCommunityMembers,
		parentColumn:     validators.FieldCommunityID,
		parentCollection: models.CollectionCommunities,
		privilegedColumn: validators.FieldCreatorID,
		joinRow: func(communityID, userID string, now time.Time) models.Row {
			return models.Row{
				"community_id": communityID,
				"user_id":      userID,
				"name":         session.DisplayName,
				"joined_at":    now,
			}
		},
		now:    time.Now,
		logger: log,
	}
}

func (c *membershipCollection[E]) List(ctx context.Context, parentKey string) ([]E, error) {
	rows, err := c.adapter.List(ctx, c.collection, models.NewQuery(models.Eq(c.parentColumn, parentKey)))
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return validators.DecodeRows[E](ctx, c.validator, rows)
}

func (c *membershipCollection[E]) Subscribe(ctx context.Context, parentKey string, onEvent func(livelist.Event[E])) (models.Unsubscribe, error) {
	unsubscribe, err := c.adapter.Subscribe(ctx, c.collection, models.Eq(c.parentColumn, parentKey), func(ev models.ChangeEvent) {
		onEvent(typedEvent[E](ctx, c.validator, ev, c.logger))
	})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return unsubscribe, nil
}

// PrivilegedID reads the host or creator column of the parent row.
func (c *membershipCollection[E]) PrivilegedID(ctx context.Context, parentKey string) (string, error) {
	row, err := c.adapter.Single(ctx, c.parentCollection, models.NewQuery(models.Eq(validators.FieldID, parentKey)))
	if err != nil {
		return "", mapAdapterError(err)
	}

	id, ok := row[c.privilegedColumn].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %s.%s is empty", validators.ErrMalformedRow, c.parentCollection, c.privilegedColumn)
	}

	return id, nil
}

func (c *membershipCollection[E]) Join(ctx context.Context, parentKey, actingUserID string) error {
	_, err := c.adapter.Insert(ctx, c.collection, c.joinRow(parentKey, actingUserID, c.now().UTC()), false)
	return mapAdapterError(err)
}

func (c *membershipCollection[E]) Leave(ctx context.Context, parentKey, actingUserID string) error {
	query := models.NewQuery(
		models.Eq(c.parentColumn, parentKey),
		models.Eq(validators.FieldUserID, actingUserID),
	)
	return mapAdapterError(c.adapter.Delete(ctx, c.collection, query))
}

// messageCollection is the typed view of the messages collection.
type messageCollection struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func newMessages(a adapter.CollectionAdapter, v validators.Validator, log *logger.Logger) *messageCollection {
	return &messageCollection{adapter: a, validator: v, logger: log}
}

func (c *messageCollection) List(ctx context.Context, threadID string) ([]models.Message, error) {
	rows, err := c.adapter.List(ctx, models.CollectionMessages, models.NewQuery(models.Eq(validators.FieldThreadID, threadID)))
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return validators.DecodeRows[models.Message](ctx, c.validator, rows)
}

func (c *messageCollection) Subscribe(ctx context.Context, threadID string, onEvent func(livelist.Event[models.Message])) (models.Unsubscribe, error) {
	unsubscribe, err := c.adapter.Subscribe(ctx, models.CollectionMessages, models.Eq(validators.FieldThreadID, threadID), func(ev models.ChangeEvent) {
		onEvent(typedEvent[models.Message](ctx, c.validator, ev, c.logger))
	})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return unsubscribe, nil
}

func (c *messageCollection) Send(ctx context.Context, msg models.Message) (models.Message, error) {
	if err := c.validator.Validate(ctx, msg); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	row, err := validators.EncodeRow(msg)
	if err != nil {
		return models.Message{}, err
	}

	stored, err := c.adapter.Insert(ctx, models.CollectionMessages, row, false)
	if err != nil {
		return models.Message{}, mapAdapterError(err)
	}

	return validators.DecodeRow[models.Message](ctx, c.validator, stored)
}

// typedEvent decodes the record of a change event. A record that fails
// validation is dropped, which turns the event into a plain refresh trigger.
func typedEvent[E livelist.Entity](ctx context.Context, v validators.Validator, ev models.ChangeEvent, log *logger.Logger) livelist.Event[E] {
	out := livelist.Event[E]{Type: ev.Type}
	if ev.Record == nil || ev.Type == models.ChangeDelete {
		return out
	}

	record, err := validators.DecodeRow[E](ctx, v, ev.Record)
	if err != nil {
		log.Warn().Err(err).Str("func", "typedEvent").Str("collection", ev.Collection).Msg("discarding malformed change record")
		return out
	}

	out.Record = &record
	return out
}
