// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pickup/models"
)

type listKind int

const (
	listGameRoster listKind = iota
	listMembers
	listThread
)

// listChangedMsg is delivered whenever a live list publishes a new snapshot.
type listChangedMsg struct {
	kind listKind
}

type boundMsg struct {
	kind listKind
	err  error
}

type gamesLoadedMsg struct {
	games []models.Game
	err   error
}

type communitiesLoadedMsg struct {
	communities []models.Community
	err         error
}

type goalsLoadedMsg struct {
	goals []models.GoalProgress
	err   error
}

type prefsLoadedMsg struct {
	prefs models.Preferences
	err   error
}

type rosterActionMsg struct {
	kind listKind
	err  error
}

type messageSentMsg struct {
	err error
}

type gameCreatedMsg struct {
	game models.Game
	err  error
}

type communityCreatedMsg struct {
	community models.Community
	err       error
}

type goalSavedMsg struct {
	err error
}

type goalDeletedMsg struct {
	err error
}

type prefsSavedMsg struct {
	prefs models.Preferences
	err   error
}

type clearStatusMsg struct{}

type filterAppliedMsg struct {
	sport string
}
