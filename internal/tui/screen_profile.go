// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strconv"

	"github.com/MKhiriev/go-pickup/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdLoadPrefs() tea.Cmd {
	ctx := m.ctx
	svc := m.services.PreferencesService
	userID := m.session.UserID

	return func() tea.Msg {
		prefs, err := svc.Get(ctx, userID)
		return prefsLoadedMsg{prefs: prefs, err: err}
	}
}

// profileForm edits prefs. Name and skill level are used for rosters and
// chat opened after the next start.
func (m appModel) profileForm(prefs models.Preferences) formModel {
	ctx := m.ctx
	svc := m.services.PreferencesService

	submit := func(values []string) (tea.Cmd, error) {
		next, err := parsePreferences(prefs, values)
		if err != nil {
			return nil, err
		}

		return func() tea.Msg {
			saved, err := svc.Save(ctx, next)
			return prefsSavedMsg{prefs: saved, err: err}
		}, nil
	}

	return newForm("ПРОФИЛЬ", submit,
		newField("Имя", "Как вас видят другие", prefs.DisplayName),
		newField("Виды спорта", "football,tennis", prefs.Sports.String()),
		newField("Уровень (0-5)", "3", strconv.Itoa(prefs.SkillLevel)),
		newField("Радиус, км", "10", strconv.Itoa(prefs.MaxDistanceKM)),
	)
}

// parsePreferences applies the profile form to prefs: name, sports, skill,
// max distance.
func parsePreferences(prefs models.Preferences, values []string) (models.Preferences, error) {
	skill, err := strconv.Atoi(values[2])
	if err != nil {
		return prefs, errors.New("уровень должен быть числом")
	}

	distance := 0
	if values[3] != "" {
		distance, err = strconv.Atoi(values[3])
		if err != nil {
			return prefs, errors.New("радиус должен быть числом")
		}
	}

	prefs.DisplayName = values[0]
	prefs.Sports = models.ParseSportList(values[1])
	prefs.SkillLevel = skill
	prefs.MaxDistanceKM = distance
	return prefs, nil
}
