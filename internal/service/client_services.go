// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pickup/internal/adapter"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/store"
	"github.com/MKhiriev/go-pickup/internal/utils"
)

type ClientServices struct {
	SessionService     ClientSessionService
	RosterService      ClientRosterService
	ThreadService      ClientThreadService
	DiscoveryService   ClientDiscoveryService
	PreferencesService ClientPreferencesService
	GoalService        ClientGoalService
}

func NewClientServices(storages *store.ClientStorages, collections adapter.CollectionAdapter, token string, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	prefs := NewClientPreferencesService(collections, logger)

	return &ClientServices{
		SessionService:     NewClientSessionService(token, prefs, logger),
		RosterService:      NewClientRosterService(collections, logger),
		ThreadService:      NewClientThreadService(collections, ids, logger),
		DiscoveryService:   NewClientDiscoveryService(collections, ids, logger),
		PreferencesService: prefs,
		GoalService:        NewClientGoalService(storages.Goals, collections, logger),
	}
}
