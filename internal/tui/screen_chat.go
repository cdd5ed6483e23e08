// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chatHistory is how many of the latest messages fit on the chat screen.
const chatHistory = 15

type chatModel struct {
	title    string
	threadID string
	back     screen
	input    textinput.Model
	sending  bool
}

func newChatModel(title, threadID string, back screen) chatModel {
	in := textinput.New()
	in.Placeholder = "Сообщение"
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	return chatModel{title: title, threadID: threadID, back: back, input: in}
}

// backList is the live list of the screen the chat was opened from.
func (c chatModel) backList() listKind {
	if c.back == screenCommunity {
		return listMembers
	}
	return listGameRoster
}

func (m appModel) openChat(title, threadID string, back screen) (tea.Model, tea.Cmd) {
	m.chat = newChatModel(title, threadID, back)
	m.current = screenChat
	return m, tea.Batch(m.lists.open(m.ctx, listThread, threadID), textinput.Blink)
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.lists.release(listThread)
			m.current = m.chat.back
			return m, m.lists.focus(m.ctx, m.chat.backList())
		case key.Matches(keyMsg, keys.enter):
			if m.chat.sending {
				return m, nil
			}
			m.chat.sending = true
			return m, m.cmdSend(m.chat.input.Value())
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) viewChat() string {
	snapshot := m.lists.thread.Snapshot()
	messages := snapshot.Items
	if len(messages) > chatHistory {
		messages = messages[len(messages)-chatHistory:]
	}

	var b strings.Builder
	switch {
	case !snapshot.Loaded && snapshot.Err == nil:
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	case len(messages) == 0:
		b.WriteString("Сообщений пока нет\n")
	default:
		for _, msg := range messages {
			line := fmt.Sprintf("[%s] %s: %s", msg.CreatedAt.Local().Format("02.01 15:04"), valueOrDash(msg.AuthorName), msg.Body)
			if msg.UserID == snapshot.ActingUserID {
				line = ownStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if snapshot.Err != nil {
		b.WriteString("\nНе удалось обновить: " + userMessage(snapshot.Err) + "\n")
	}

	b.WriteString("\n> " + m.chat.input.View() + "\n")
	if m.chat.sending {
		b.WriteString(m.spinner.View() + " Отправка...\n")
	}

	return renderPage(m.chat.title, strings.TrimRight(b.String(), "\n"), "enter: отправить │ esc: назад")
}

func (m appModel) cmdSend(body string) tea.Cmd {
	ctx := m.ctx
	thread := m.lists.thread

	return func() tea.Msg {
		_, err := thread.Send(ctx, body)
		return messageSentMsg{err: err}
	}
}
