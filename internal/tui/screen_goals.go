// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const goalsHotKeys = "n: новая цель │ ctrl+d: удалить │ r: обновить │ esc: назад"

func (m appModel) openGoals() (tea.Model, tea.Cmd) {
	m.current = screenGoals
	m.loading = true
	return m, m.cmdLoadGoals()
}

func (m appModel) updateGoals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.current = screenGames
		m.loading = false
	case key.Matches(keyMsg, keys.up):
		if m.goalIdx > 0 {
			m.goalIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.goalIdx < len(m.goals)-1 {
			m.goalIdx++
		}
	case key.Matches(keyMsg, keys.newItem):
		return m.openForm(m.newGoalForm(), screenGoals)
	case key.Matches(keyMsg, keys.delete):
		if len(m.goals) == 0 {
			m.status = "Нет целей"
			return m, nil
		}
		goal := m.goals[m.goalIdx].Goal
		m.askConfirm(goal.Title, m.cmdDeleteGoal(goal))
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoadGoals()
	}

	return m, nil
}

func (m appModel) viewGoals() string {
	out := m.statusLine()
	if len(m.goals) == 0 {
		out += "Целей нет\n"
		return renderPage("ЦЕЛИ", strings.TrimRight(out, "\n"), goalsHotKeys)
	}

	if out != "" {
		out += "\n"
	}
	out += "  Цель                     │ Спорт        │ Прогресс │ Период\n"
	out += "  ─────────────────────────┼──────────────┼──────────┼──────────────\n"
	for i, p := range m.goals {
		progress := fmt.Sprintf("%d / %d", p.Played, p.Goal.TargetGames)
		if p.Done() {
			progress += " ✓"
		}
		out += fmt.Sprintf(
			"%s %-24s │ %-12s │ %-8s │ %s–%s\n",
			cursor(i == m.goalIdx),
			fitText(p.Goal.Title, 24),
			fitText(valueOrDash(p.Goal.Sport), 12),
			progress,
			p.PeriodStart.Format("02.01"),
			p.PeriodEnd.AddDate(0, 0, -1).Format("02.01"),
		)
	}

	return renderPage("ЦЕЛИ", strings.TrimRight(out, "\n"), goalsHotKeys)
}

// cmdLoadGoals lists the goals and computes the progress of each.
func (m appModel) cmdLoadGoals() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GoalService
	userID := m.session.UserID

	return func() tea.Msg {
		goals, err := svc.List(ctx, userID)
		if err != nil {
			return goalsLoadedMsg{err: err}
		}

		out := make([]models.GoalProgress, 0, len(goals))
		for _, goal := range goals {
			progress, err := svc.Progress(ctx, goal)
			if err != nil {
				return goalsLoadedMsg{err: err}
			}
			out = append(out, progress)
		}
		return goalsLoadedMsg{goals: out}
	}
}

func (m appModel) cmdDeleteGoal(goal models.Goal) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GoalService

	return func() tea.Msg {
		return goalDeletedMsg{err: svc.Delete(ctx, goal.UserID, goal.GoalID)}
	}
}

func (m appModel) newGoalForm() formModel {
	ctx := m.ctx
	svc := m.services.GoalService
	userID := m.session.UserID

	submit := func(values []string) (tea.Cmd, error) {
		goal, err := parseGoal(userID, values)
		if err != nil {
			return nil, err
		}

		return func() tea.Msg {
			_, err := svc.Create(ctx, goal)
			return goalSavedMsg{err: err}
		}, nil
	}

	return newForm("НОВАЯ ЦЕЛЬ", submit,
		newField("Название", "3 игры в неделю", ""),
		newField("Вид спорта", "пусто: любой", m.sport),
		newField("Игр за период", "3", ""),
		newField("Период", "week или month", string(models.PeriodWeek)),
	)
}

// parseGoal reads the goal form: title, sport, target games, period.
func parseGoal(userID string, values []string) (models.Goal, error) {
	if values[0] == "" {
		return models.Goal{}, errors.New("нужно название")
	}

	target, err := strconv.Atoi(values[2])
	if err != nil || target <= 0 {
		return models.Goal{}, errors.New("число игр должно быть положительным")
	}

	period := models.GoalPeriod(strings.ToLower(values[3]))
	if period == "" {
		period = models.PeriodWeek
	}
	if period != models.PeriodWeek && period != models.PeriodMonth {
		return models.Goal{}, errors.New("период: week или month")
	}

	return models.Goal{
		UserID:      userID,
		Title:       values[0],
		Sport:       values[1],
		TargetGames: target,
		Period:      period,
	}, nil
}
