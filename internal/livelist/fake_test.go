// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pickup/models"
)

// fakeSource is an in-memory Membership and MessageSource. It records every
// call so tests can count refreshes and subscription releases.
type fakeSource[E Entity] struct {
	mu sync.Mutex

	rows       map[string][]E
	privileged map[string]string

	listErr      error
	joinErr      error
	leaveErr     error
	sendErr      error
	subscribeErr error

	// gate, when set, blocks List until it is closed. entered receives a
	// value once List is blocked on gate.
	gate    chan struct{}
	entered chan struct{}

	listCalls  int
	joinCalls  int
	leaveCalls int
	sendCalls  int
	ops        []string
	handlers   map[string]func(Event[E])

	send func(E) E
}

func newFakeSource[E Entity]() *fakeSource[E] {
	return &fakeSource[E]{
		rows:       map[string][]E{},
		privileged: map[string]string{},
		handlers:   map[string]func(Event[E]){},
	}
}

func (f *fakeSource[E]) List(ctx context.Context, parentKey string) ([]E, error) {
	f.mu.Lock()
	f.listCalls++
	gate, entered := f.gate, f.entered
	f.mu.Unlock()

	if gate != nil {
		if entered != nil {
			entered <- struct{}{}
		}
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]E(nil), f.rows[parentKey]...), nil
}

func (f *fakeSource[E]) PrivilegedID(ctx context.Context, parentKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.privileged[parentKey], nil
}

func (f *fakeSource[E]) Subscribe(ctx context.Context, parentKey string, onEvent func(Event[E])) (models.Unsubscribe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, "subscribe "+parentKey)
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.handlers[parentKey] = onEvent

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.ops = append(f.ops, "unsubscribe "+parentKey)
	}, nil
}

func (f *fakeSource[E]) Join(ctx context.Context, parentKey, actingUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joinCalls++
	return f.joinErr
}

func (f *fakeSource[E]) Leave(ctx context.Context, parentKey, actingUserID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaveCalls++
	return f.leaveErr
}

func (f *fakeSource[E]) Send(ctx context.Context, msg E) (E, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendCalls++
	if f.sendErr != nil {
		var zero E
		return zero, f.sendErr
	}
	if f.send != nil {
		return f.send(msg), nil
	}
	return msg, nil
}

func (f *fakeSource[E]) setRows(parentKey string, rows ...E) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[parentKey] = rows
}

func (f *fakeSource[E]) emit(parentKey string, ev Event[E]) {
	f.mu.Lock()
	h := f.handlers[parentKey]
	f.mu.Unlock()
	if h != nil {
		h(ev)
	}
}

func (f *fakeSource[E]) calls() (list, join, leave int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.joinCalls, f.leaveCalls
}

func (f *fakeSource[E]) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ops...)
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("m%03d", s.n)
}
