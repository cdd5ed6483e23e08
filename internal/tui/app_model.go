// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenGames screen = iota
	screenGame
	screenCommunities
	screenCommunity
	screenChat
	screenGoals
	screenForm
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	session   models.Session
	buildInfo models.BuildInfo
	logger    *logger.Logger

	lists   *liveLists
	current screen
	loading bool
	spinner spinner.Model
	status  string
	sport   string

	games   []models.Game
	gameIdx int
	game    models.Game

	communities  []models.Community
	communityIdx int
	community    models.Community

	// busy is set while a join or leave is in flight.
	busy bool

	chat chatModel

	goals   []models.GoalProgress
	goalIdx int

	form     formModel
	formBack screen

	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingConfirm tea.Cmd
	showBuildInfo  bool

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, registry Registry, session models.Session, buildInfo models.BuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	lists := newLiveLists(
		services.RosterService.OpenGame(session),
		services.RosterService.OpenCommunity(session),
		services.ThreadService.OpenThread(session),
		registry,
	)

	return appModel{
		ctx:       ctx,
		services:  services,
		session:   session,
		buildInfo: buildInfo,
		logger:    log,
		lists:     lists,
		current:   screenGames,
		loading:   true,
		spinner:   s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.cmdLoadGames(),
		m.lists.listen(m.ctx, listGameRoster),
		m.lists.listen(m.ctx, listMembers),
		m.lists.listen(m.ctx, listThread),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				cmd := m.pendingConfirm
				m.showConfirm = false
				m.pendingConfirm = nil
				return m, cmd
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingConfirm = nil
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listChangedMsg:
		// the view reads the snapshot, only keep listening
		return m, m.lists.listen(m.ctx, msg.kind)

	case boundMsg:
		if msg.err != nil {
			m.showErrorf("Обновления в реальном времени недоступны: " + userMessage(msg.err))
		}
		return m, nil

	case rosterActionMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
		}
		return m, nil

	case messageSentMsg:
		m.chat.sending = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.chat.input.Reset()
		return m, nil

	case gamesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.games = msg.games
		m.gameIdx = clampIndex(m.gameIdx, len(m.games))
		return m, nil

	case communitiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.communities = msg.communities
		m.communityIdx = clampIndex(m.communityIdx, len(m.communities))
		return m, nil

	case goalsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.goals = msg.goals
		m.goalIdx = clampIndex(m.goalIdx, len(m.goals))
		return m, nil

	case filterAppliedMsg:
		m.sport = msg.sport
		m.current = screenGames
		m.loading = true
		m.gameIdx = 0
		return m, m.cmdLoadGames()

	case gameCreatedMsg:
		m.form.submitting = false
		if msg.err != nil && msg.game.GameID == "" {
			m.form.err = userMessage(msg.err)
			return m, nil
		}
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
		}
		return m.openGame(msg.game)

	case communityCreatedMsg:
		m.form.submitting = false
		if msg.err != nil && msg.community.CommunityID == "" {
			m.form.err = userMessage(msg.err)
			return m, nil
		}
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
		}
		return m.openCommunity(msg.community)

	case goalSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = userMessage(msg.err)
			return m, nil
		}
		return m.openGoals()

	case goalDeletedMsg:
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.status = "Цель удалена"
		return m, tea.Batch(m.cmdLoadGoals(), cmdClearStatus())

	case prefsLoadedMsg:
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		return m.openForm(m.profileForm(msg.prefs), m.current)

	case prefsSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = userMessage(msg.err)
			return m, nil
		}
		m.session.DisplayName = msg.prefs.DisplayName
		m.session.SkillLevel = msg.prefs.SkillLevel
		m.current = m.formBack
		m.status = "Профиль сохранён"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.current {
	case screenGames:
		return m.updateGames(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenCommunities:
		return m.updateCommunities(msg)
	case screenCommunity:
		return m.updateCommunity(msg)
	case screenChat:
		return m.updateChat(msg)
	case screenGoals:
		return m.updateGoals(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.current {
	case screenGames:
		body = m.viewGames()
	case screenGame:
		body = m.viewGame()
	case screenCommunities:
		body = m.viewCommunities()
	case screenCommunity:
		body = m.viewCommunity()
	case screenChat:
		body = m.viewChat()
	case screenGoals:
		body = m.viewGoals()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(subject string, onYes tea.Cmd) {
	m.showConfirm = true
	m.confirm.message = subject
	m.pendingConfirm = onYes
}

func (m appModel) copyID(id string) (tea.Model, tea.Cmd) {
	if err := writeClipboard(id); err != nil {
		m.showErrorf("Ошибка копирования: " + err.Error())
		return m, nil
	}
	m.status = "ID скопирован"
	return m, cmdClearStatus()
}

func (m appModel) openForm(form formModel, back screen) (tea.Model, tea.Cmd) {
	m.form = form
	m.formBack = back
	m.current = screenForm
	return m, textinput.Blink
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd, done := m.form.update(msg)
	m.form = form
	if done {
		m.current = m.formBack
		return m, nil
	}
	return m, cmd
}

// statusLine renders the transient status and the loading spinner.
func (m appModel) statusLine() string {
	out := ""
	if m.loading {
		out += m.spinner.View() + " Загрузка...\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	return out
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
