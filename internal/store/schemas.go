// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-pickup/models"
)

// Schemas is the registry of collections exposed by the server.
type Schemas map[string]models.Schema

func NewSchemas(schemas ...models.Schema) Schemas {
	s := make(Schemas, len(schemas))
	for _, schema := range schemas {
		s[schema.Collection] = schema
	}
	return s
}

// DefaultSchemas declares every go-pickup collection.
func DefaultSchemas() Schemas {
	return NewSchemas(
		models.Schema{
			Collection: models.CollectionGames,
			Table:      "games",
			Columns: []models.Column{
				{Name: "id", Type: models.TypeText, Required: true},
				{Name: "host_id", Type: models.TypeText, Required: true},
				{Name: "title", Type: models.TypeText, Required: true},
				{Name: "sport", Type: models.TypeText},
				{Name: "location", Type: models.TypeText},
				{Name: "starts_at", Type: models.TypeTime, Required: true},
				{Name: "capacity", Type: models.TypeInt},
				{Name: "latitude", Type: models.TypeFloat},
				{Name: "longitude", Type: models.TypeFloat},
				{Name: "created_at", Type: models.TypeTime, Defaulted: true},
			},
			Key:         []string{"id"},
			OwnerColumn: "host_id",
			Order:       "starts_at.asc",
		},
		models.Schema{
			Collection: models.CollectionGamePlayers,
			Table:      "game_players",
			Columns: []models.Column{
				{Name: "game_id", Type: models.TypeText, Required: true},
				{Name: "user_id", Type: models.TypeText, Required: true},
				{Name: "name", Type: models.TypeText},
				{Name: "skill_level", Type: models.TypeInt},
				{Name: "joined_at", Type: models.TypeTime, Defaulted: true},
			},
			Key:         []string{"game_id", "user_id"},
			OwnerColumn: "user_id",
			Order:       "joined_at.asc",
		},
		models.Schema{
			Collection: models.CollectionCommunities,
			Table:      "communities",
			Columns: []models.Column{
				{Name: "id", Type: models.TypeText, Required: true},
				{Name: "creator_id", Type: models.TypeText, Required: true},
				{Name: "name", Type: models.TypeText, Required: true},
				{Name: "sport", Type: models.TypeText},
				{Name: "description", Type: models.TypeText},
				{Name: "created_at", Type: models.TypeTime, Defaulted: true},
			},
			Key:         []string{"id"},
			OwnerColumn: "creator_id",
			Order:       "name.asc",
		},
		models.Schema{
			Collection: models.CollectionCommunityMembers,
			Table:      "community_members",
			Columns: []models.Column{
				{Name: "community_id", Type: models.TypeText, Required: true},
				{Name: "user_id", Type: models.TypeText, Required: true},
				{Name: "name", Type: models.TypeText},
				{Name: "role", Type: models.TypeText, Defaulted: true},
				{Name: "joined_at", Type: models.TypeTime, Defaulted: true},
			},
			Key:         []string{"community_id", "user_id"},
			OwnerColumn: "user_id",
			Order:       "joined_at.asc",
		},
		models.Schema{
			Collection: models.CollectionMessages,
			Table:      "messages",
			Columns: []models.Column{
				{Name: "id", Type: models.TypeText, Required: true},
				{Name: "thread_id", Type: models.TypeText, Required: true},
				{Name: "user_id", Type: models.TypeText, Required: true},
				{Name: "author_name", Type: models.TypeText},
				{Name: "body", Type: models.TypeText, Required: true},
				{Name: "created_at", Type: models.TypeTime, Defaulted: true},
			},
			Key:         []string{"id"},
			OwnerColumn: "user_id",
			Order:       "created_at.asc",
		},
		models.Schema{
			Collection: models.CollectionPreferences,
			Table:      "preferences",
			Columns: []models.Column{
				{Name: "user_id", Type: models.TypeText, Required: true},
				{Name: "display_name", Type: models.TypeText},
				{Name: "sports", Type: models.TypeText},
				{Name: "skill_level", Type: models.TypeInt},
				{Name: "max_distance_km", Type: models.TypeInt},
				{Name: "notifications", Type: models.TypeBool},
				{Name: "updated_at", Type: models.TypeTime, Defaulted: true},
			},
			Key:         []string{"user_id"},
			OwnerColumn: "user_id",
		},
	)
}

// Get returns the schema of collection.
func (s Schemas) Get(collection string) (models.Schema, error) {
	schema, ok := s[collection]
	if !ok {
		return models.Schema{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return schema, nil
}

// Names lists the registered collections in lexical order.
func (s Schemas) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
