// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/models"
	tea "github.com/charmbracelet/bubbletea"
)

// liveList is the part of livelist.Roster and livelist.Thread the screens
// drive.
type liveList interface {
	Bind(ctx context.Context, parentKey string) error
	Close()
	Focus(ctx context.Context) error
	Changes() <-chan struct{}
}

// liveLists are the synchronizers of one session. Each is bound while its
// screen is open and registered with the background refresher meanwhile.
type liveLists struct {
	roster  *livelist.Roster[models.Player]
	members *livelist.Roster[models.Member]
	thread  *livelist.Thread

	registry   Registry
	unregister map[listKind]func()
}

func newLiveLists(roster *livelist.Roster[models.Player], members *livelist.Roster[models.Member], thread *livelist.Thread, registry Registry) *liveLists {
	return &liveLists{
		roster:     roster,
		members:    members,
		thread:     thread,
		registry:   registry,
		unregister: make(map[listKind]func()),
	}
}

func (l *liveLists) get(kind listKind) liveList {
	switch kind {
	case listGameRoster:
		return l.roster
	case listMembers:
		return l.members
	default:
		return l.thread
	}
}

// open binds the list to parentKey. Rebinding an open list switches it to the
// new parent.
func (l *liveLists) open(ctx context.Context, kind listKind, parentKey string) tea.Cmd {
	list := l.get(kind)
	if _, registered := l.unregister[kind]; !registered && l.registry != nil {
		l.unregister[kind] = l.registry.Register(list)
	}

	return func() tea.Msg {
		return boundMsg{kind: kind, err: list.Bind(ctx, parentKey)}
	}
}

// release closes the list and takes it out of the refresh round.
func (l *liveLists) release(kind listKind) {
	if unregister, ok := l.unregister[kind]; ok {
		unregister()
		delete(l.unregister, kind)
	}
	l.get(kind).Close()
}

func (l *liveLists) closeAll() {
	for _, kind := range []listKind{listGameRoster, listMembers, listThread} {
		l.release(kind)
	}
}

// focus refreshes a list whose screen became visible again. Errors end up
// in the list's snapshot.
func (l *liveLists) focus(ctx context.Context, kind listKind) tea.Cmd {
	list := l.get(kind)
	return func() tea.Msg {
		_ = list.Focus(ctx)
		return nil
	}
}

// listen waits for the next snapshot change of the list.
func (l *liveLists) listen(ctx context.Context, kind listKind) tea.Cmd {
	changes := l.get(kind).Changes()
	return func() tea.Msg {
		select {
		case <-changes:
			return listChangedMsg{kind: kind}
		case <-ctx.Done():
			return nil
		}
	}
}
