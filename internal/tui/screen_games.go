// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const gamesHotKeys = "enter: открыть │ n: новая │ f: спорт │ c: копировать id │ r: обновить │ t: сообщества │ g: цели │ p: профиль │ v: версия │ q: выход"

func (m appModel) updateGames(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.gameIdx > 0 {
			m.gameIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.gameIdx < len(m.games)-1 {
			m.gameIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		game, ok := m.currentGame()
		if !ok {
			m.status = "Нет игр"
			return m, nil
		}
		return m.openGame(game)
	case key.Matches(keyMsg, keys.copy):
		game, ok := m.currentGame()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		return m.copyID(game.GameID)
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoadGames()
	case key.Matches(keyMsg, keys.newItem):
		return m.openForm(m.newGameForm(), screenGames)
	case key.Matches(keyMsg, keys.filter):
		return m.openForm(m.filterForm(), screenGames)
	case key.Matches(keyMsg, keys.communities):
		return m.openCommunities()
	case key.Matches(keyMsg, keys.goals):
		return m.openGoals()
	case key.Matches(keyMsg, keys.profile):
		return m, m.cmdLoadPrefs()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) viewGames() string {
	out := m.statusLine()
	if m.sport != "" {
		out += "Спорт: " + m.sport + "\n"
	}

	if len(m.games) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Ближайших игр нет\n"
		return renderPage("ИГРЫ", strings.TrimRight(out, "\n"), gamesHotKeys)
	}

	if out != "" {
		out += "\n"
	}
	out += "  Начало           │ Спорт        │ Игра                     │ Место\n"
	out += "  ─────────────────┼──────────────┼──────────────────────────┼────────────────\n"
	for i, game := range m.games {
		out += fmt.Sprintf(
			"%s %-16s │ %-12s │ %-24s │ %s\n",
			cursor(i == m.gameIdx),
			formatStart(game.StartsAt),
			fitText(game.Sport, 12),
			fitText(game.Title, 24),
			valueOrDash(game.Location),
		)
	}

	return renderPage("ИГРЫ", strings.TrimRight(out, "\n"), gamesHotKeys)
}

func (m appModel) currentGame() (models.Game, bool) {
	if len(m.games) == 0 || m.gameIdx < 0 || m.gameIdx >= len(m.games) {
		return models.Game{}, false
	}
	return m.games[m.gameIdx], true
}

func (m appModel) cmdLoadGames() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DiscoveryService
	filter := models.GameFilter{Sport: m.sport}

	return func() tea.Msg {
		games, err := svc.Games(ctx, filter)
		return gamesLoadedMsg{games: games, err: err}
	}
}

func (m appModel) filterForm() formModel {
	submit := func(values []string) (tea.Cmd, error) {
		sport := values[0]
		return func() tea.Msg { return filterAppliedMsg{sport: sport} }, nil
	}

	return newForm("ФИЛЬТР", submit,
		newField("Вид спорта", "пусто: все", m.sport),
	)
}

func (m appModel) newGameForm() formModel {
	ctx := m.ctx
	svc := m.services.DiscoveryService
	session := m.session

	submit := func(values []string) (tea.Cmd, error) {
		game, err := parseGame(values)
		if err != nil {
			return nil, err
		}

		return func() tea.Msg {
			stored, err := svc.CreateGame(ctx, session, game)
			return gameCreatedMsg{game: stored, err: err}
		}, nil
	}

	return newForm("НОВАЯ ИГРА", submit,
		newField("Название", "Пятничный футбол", ""),
		newField("Вид спорта", "football", m.sport),
		newField("Место", "Парк Горького", ""),
		newField("Начало", time.Now().Add(24*time.Hour).Format(startLayout), ""),
		newField("Мест", "0: без ограничений", ""),
	)
}

// parseGame reads the new game form: title, sport, location, start, capacity.
func parseGame(values []string) (models.Game, error) {
	if values[0] == "" {
		return models.Game{}, errors.New("нужно название")
	}
	if values[1] == "" {
		return models.Game{}, errors.New("нужен вид спорта")
	}

	startsAt, err := time.ParseInLocation(startLayout, values[3], time.Local)
	if err != nil {
		return models.Game{}, fmt.Errorf("начало в формате %s", startLayout)
	}

	capacity := 0
	if values[4] != "" {
		capacity, err = strconv.Atoi(values[4])
		if err != nil || capacity < 0 {
			return models.Game{}, errors.New("число мест должно быть неотрицательным")
		}
	}

	return models.Game{
		Title:    values[0],
		Sport:    values[1],
		Location: values[2],
		StartsAt: startsAt.UTC(),
		Capacity: capacity,
	}, nil
}
