// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	communitiesHotKeys = "enter: открыть │ n: новое │ r: обновить │ esc: назад"
	communityHotKeys   = "a: вступить │ x: выйти │ m: чат │ r: обновить │ esc: назад"
)

func (m appModel) openCommunities() (tea.Model, tea.Cmd) {
	m.current = screenCommunities
	m.loading = true
	return m, m.cmdLoadCommunities()
}

func (m appModel) updateCommunities(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = screenGames
		m.loading = false
	case key.Matches(keyMsg, keys.up):
		if m.communityIdx > 0 {
			m.communityIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.communityIdx < len(m.communities)-1 {
			m.communityIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.communities) == 0 {
			m.status = "Нет сообществ"
			return m, nil
		}
		return m.openCommunity(m.communities[m.communityIdx])
	case key.Matches(keyMsg, keys.newItem):
		return m.openForm(m.newCommunityForm(), screenCommunities)
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoadCommunities()
	}

	return m, nil
}

func (m appModel) viewCommunities() string {
	out := m.statusLine()
	if len(m.communities) == 0 {
		out += "Сообществ нет\n"
		return renderPage("СООБЩЕСТВА", strings.TrimRight(out, "\n"), communitiesHotKeys)
	}

	if out != "" {
		out += "\n"
	}
	out += "  Название                 │ Спорт        │ Описание\n"
	out += "  ─────────────────────────┼──────────────┼────────────────────────\n"
	for i, c := range m.communities {
		out += fmt.Sprintf(
			"%s %-24s │ %-12s │ %s\n",
			cursor(i == m.communityIdx),
			fitText(c.Name, 24),
			fitText(c.Sport, 12),
			fitText(valueOrDash(c.Description), 40),
		)
	}

	return renderPage("СООБЩЕСТВА", strings.TrimRight(out, "\n"), communitiesHotKeys)
}

func (m appModel) openCommunity(community models.Community) (tea.Model, tea.Cmd) {
	m.community = community
	m.current = screenCommunity
	m.busy = false
	return m, m.lists.open(m.ctx, listMembers, community.CommunityID)
}

func (m appModel) updateCommunity(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.lists.release(listMembers)
		return m.openCommunities()
	case key.Matches(keyMsg, keys.join):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdJoin(listMembers)
	case key.Matches(keyMsg, keys.leave):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdLeave(listMembers)
	case key.Matches(keyMsg, keys.chat):
		return m.openChat("ЧАТ: "+m.community.Name, m.community.CommunityID, screenCommunity)
	case key.Matches(keyMsg, keys.reload):
		return m, m.lists.focus(m.ctx, listMembers)
	}

	return m, nil
}

func (m appModel) viewCommunity() string {
	snapshot := m.lists.members.Snapshot()

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("Спорт     : " + valueOrDash(m.community.Sport) + "\n")
	b.WriteString("Описание  : " + valueOrDash(m.community.Description) + "\n")
	fmt.Fprintf(&b, "Участников: %d\n", len(snapshot.Items))
	b.WriteString("\n[ УЧАСТНИКИ ]\n")

	switch {
	case !snapshot.Loaded && snapshot.Err == nil:
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	case len(snapshot.Items) == 0:
		b.WriteString("(пусто)\n")
	default:
		for _, member := range snapshot.Items {
			line := fmt.Sprintf("%-24s %s", fitText(valueOrDash(member.Name), 24), member.Role)
			if member.UserID == snapshot.PrivilegedID {
				line += "  ★ основатель"
			}
			if member.UserID == snapshot.ActingUserID {
				line = ownStyle.Render(line + "  (вы)")
			}
			b.WriteString(line + "\n")
		}
	}

	if snapshot.Err != nil {
		b.WriteString("\nНе удалось обновить: " + userMessage(snapshot.Err) + "\n")
	}

	return renderPage("СООБЩЕСТВО: "+m.community.Name, strings.TrimRight(b.String(), "\n"), communityHotKeys)
}

func (m appModel) cmdLoadCommunities() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DiscoveryService
	sport := m.sport

	return func() tea.Msg {
		communities, err := svc.Communities(ctx, sport)
		return communitiesLoadedMsg{communities: communities, err: err}
	}
}

func (m appModel) newCommunityForm() formModel {
	ctx := m.ctx
	svc := m.services.DiscoveryService
	session := m.session

	submit := func(values []string) (tea.Cmd, error) {
		if values[0] == "" {
			return nil, errors.New("нужно название")
		}
		if values[1] == "" {
			return nil, errors.New("нужен вид спорта")
		}
		community := models.Community{Name: values[0], Sport: values[1], Description: values[2]}

		return func() tea.Msg {
			stored, err := svc.CreateCommunity(ctx, session, community)
			return communityCreatedMsg{community: stored, err: err}
		}, nil
	}

	return newForm("НОВОЕ СООБЩЕСТВО", submit,
		newField("Название", "Футбол по пятницам", ""),
		newField("Вид спорта", "football", m.sport),
		newField("Описание", "можно пусто", ""),
	)
}
