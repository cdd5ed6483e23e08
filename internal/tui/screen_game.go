// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const gameHotKeys = "a: записаться │ x: выйти │ m: чат │ c: копировать id │ r: обновить │ esc: назад"

// openGame shows game and binds the shared roster to it. Opening another game
// rebinds the same roster.
func (m appModel) openGame(game models.Game) (tea.Model, tea.Cmd) {
	m.game = game
	m.current = screenGame
	m.busy = false
	return m, m.lists.open(m.ctx, listGameRoster, game.GameID)
}

func (m appModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.lists.release(listGameRoster)
		m.current = screenGames
		m.loading = true
		return m, m.cmdLoadGames()
	case key.Matches(keyMsg, keys.join):
		if m.busy {
			return m, nil
		}
		snapshot := m.lists.roster.Snapshot()
		if !m.lists.roster.Joined() && models.OpenSpots(m.game, len(snapshot.Items)) == 0 {
			m.showErrorf(userMessage(errGameIsFull))
			return m, nil
		}
		m.busy = true
		return m, m.cmdJoin(listGameRoster)
	case key.Matches(keyMsg, keys.leave):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdLeave(listGameRoster)
	case key.Matches(keyMsg, keys.chat):
		return m.openChat("ЧАТ: "+m.game.Title, m.game.GameID, screenGame)
	case key.Matches(keyMsg, keys.copy):
		return m.copyID(m.game.GameID)
	case key.Matches(keyMsg, keys.reload):
		return m, m.lists.focus(m.ctx, listGameRoster)
	}

	return m, nil
}

func (m appModel) viewGame() string {
	snapshot := m.lists.roster.Snapshot()
	players := snapshot.Items

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("Спорт     : " + valueOrDash(m.game.Sport) + "\n")
	b.WriteString("Место     : " + valueOrDash(m.game.Location) + "\n")
	b.WriteString("Начало    : " + formatStart(m.game.StartsAt) + "\n")
	b.WriteString("Игроков   : " + formatSpots(len(players), m.game.Capacity))
	if spots := models.OpenSpots(m.game, len(players)); spots >= 0 {
		fmt.Fprintf(&b, " (свободно %d)", spots)
	}
	b.WriteString("\n")
	b.WriteString("Ср. уровень: " + valueOrDash(models.AverageSkill(players)) + "\n")
	b.WriteString("ID        : " + m.game.GameID + "\n")
	b.WriteString("\n[ СОСТАВ ]\n")

	switch {
	case !snapshot.Loaded && snapshot.Err == nil:
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	case len(players) == 0:
		b.WriteString("(пусто)\n")
	default:
		for _, p := range players {
			line := fmt.Sprintf("%-24s уровень %d", fitText(valueOrDash(p.Name), 24), p.SkillLevel)
			if p.UserID == snapshot.PrivilegedID {
				line += "  ★ организатор"
			}
			if p.UserID == snapshot.ActingUserID {
				line = ownStyle.Render(line + "  (вы)")
			}
			b.WriteString(line + "\n")
		}
	}

	if snapshot.Err != nil {
		b.WriteString("\nНе удалось обновить: " + userMessage(snapshot.Err) + "\n")
	}
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Отправка...\n")
	}

	return renderPage("ИГРА: "+m.game.Title, strings.TrimRight(b.String(), "\n"), gameHotKeys)
}

func (m appModel) cmdJoin(kind listKind) tea.Cmd {
	ctx := m.ctx
	join := m.lists.roster.Join
	if kind == listMembers {
		join = m.lists.members.Join
	}

	return func() tea.Msg {
		return rosterActionMsg{kind: kind, err: join(ctx)}
	}
}

func (m appModel) cmdLeave(kind listKind) tea.Cmd {
	ctx := m.ctx
	leave := m.lists.roster.Leave
	if kind == listMembers {
		leave = m.lists.members.Leave
	}

	return func() tea.Msg {
		return rosterActionMsg{kind: kind, err: leave(ctx)}
	}
}
