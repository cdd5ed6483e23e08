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

type formField struct {
	label string
	input textinput.Model
}

// submitFunc validates the entered values and returns the command that
// stores them. A returned error is shown inside the form.
type submitFunc func(values []string) (tea.Cmd, error)

// formModel is a column of labelled text inputs with a single submit action.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	err        string
	submitting bool
	submit     submitFunc
}

func newField(label, placeholder, value string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.SetValue(value)
	return formField{label: label, input: in}
}

func newForm(title string, submit submitFunc, fields ...formField) formModel {
	f := formModel{title: title, fields: fields, submit: submit}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f formModel) values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = strings.TrimSpace(field.input.Value())
	}
	return out
}

func (f *formModel) move(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// update handles navigation and submit. done is true when the user left the
// form with esc.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return f, nil, true
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			f.move(1)
			return f, nil, false
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			f.move(-1)
			return f, nil, false
		case key.Matches(keyMsg, keys.enter):
			if f.submitting {
				return f, nil, false
			}
			cmd, err := f.submit(f.values())
			if err != nil {
				f.err = err.Error()
				return f, nil, false
			}
			f.err = ""
			f.submitting = true
			return f, cmd, false
		}
	}

	if len(f.fields) == 0 {
		return f, nil, false
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd, false
}

func (f formModel) View() string {
	var b strings.Builder
	for _, field := range f.fields {
		fmt.Fprintf(&b, "%-18s│ [%s]\n", field.label, field.input.View())
	}

	action := "[Сохранить]"
	if f.submitting {
		action = "[Сохранение...]"
	}
	fmt.Fprintf(&b, "%-18s│ %s\n", "Действие", action)

	if f.err != "" {
		fmt.Fprintf(&b, "%-18s│ %s\n", "Ошибка", f.err)
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}
