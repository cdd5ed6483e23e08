// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/models"
)

// Snapshot is a read-only copy of a live list's state.
type Snapshot[E Entity] struct {
	ParentKey    string
	Items        []E
	PrivilegedID string
	ActingUserID string
	// Loaded is false until the first successful refresh for ParentKey.
	Loaded bool
	// Err is the error of the last refresh, nil once a refresh succeeds.
	// Items still hold the last good snapshot.
	Err error
}

// scope is one binding of a list to a parent key. closed and unsubscribe
// are guarded by the owning list's mutex.
type scope struct {
	parentKey string
	ctx       context.Context
	cancel    context.CancelFunc

	closed      bool
	unsubscribe models.Unsubscribe
}

type state[E Entity] struct {
	items        []E
	privilegedID string
}

type fetchFunc[E Entity] func(ctx context.Context, parentKey string) (state[E], error)

// appended is an item added locally while a refresh was in flight.
type appended[E Entity] struct {
	seq   uint64
	scope *scope
	item  E
}

// liveList is the scope and snapshot bookkeeping shared by Roster and
// Thread.
type liveList[E Entity] struct {
	source       Source[E]
	fetch        fetchFunc[E]
	onEvent      func(sc *scope, ev Event[E])
	order        func(items []E, privilegedID string) []E
	actingUserID string
	logger       *logger.Logger

	mu      sync.Mutex
	scope   *scope
	state   state[E]
	loaded  bool
	lastErr error

	// appendSeq counts local inserts. appends keeps those made while
	// refreshes are in flight, so a refresh that read the source before an
	// insert does not drop it.
	appendSeq uint64
	appends   []appended[E]
	inFlight  int

	changes chan struct{}
}

func newLiveList[E Entity](source Source[E], fetch fetchFunc[E], actingUserID string, log *logger.Logger) *liveList[E] {
	l := &liveList[E]{
		source:       source,
		fetch:        fetch,
		actingUserID: actingUserID,
		logger:       log,
		changes:      make(chan struct{}, 1),
	}
	l.onEvent = func(sc *scope, _ Event[E]) {
		l.refresh(sc.ctx, sc)
	}

	return l
}

// bind releases the current scope, if any, then subscribes to parentKey and
// loads the first snapshot. The subscription error is returned after the
// refresh has been attempted, so the list is usable without live updates.
func (l *liveList[E]) bind(ctx context.Context, parentKey string) error {
	if parentKey == "" {
		return ErrEmptyParentKey
	}

	scopeCtx, cancel := context.WithCancel(ctx)
	sc := &scope{parentKey: parentKey, ctx: scopeCtx, cancel: cancel}

	l.mu.Lock()
	old := l.scope
	l.scope = sc
	if old == nil || old.parentKey != parentKey {
		l.state = state[E]{}
		l.loaded = false
	}
	l.lastErr = nil
	oldUnsubscribe := l.detach(old)
	l.mu.Unlock()

	release(old, oldUnsubscribe)
	l.notify()

	var subErr error
	unsubscribe, err := l.source.Subscribe(scopeCtx, parentKey, func(ev Event[E]) {
		if l.isLive(sc) {
			l.onEvent(sc, ev)
		}
	})
	switch {
	case err != nil && scopeCtx.Err() != nil:
		// rebound or closed while subscribing
		return nil
	case err != nil:
		l.logger.Err(err).Str("func", "*liveList.bind").Str("parent_key", parentKey).Msg("change subscription failed")
		subErr = fmt.Errorf("subscribe to %s: %w", parentKey, err)
	case !l.attach(sc, unsubscribe):
		unsubscribe()
		return nil
	}

	l.refresh(scopeCtx, sc)
	return subErr
}

// close ends the current scope. The subscription is released exactly once
// and in-flight refreshes of the scope are discarded when they complete.
func (l *liveList[E]) close() {
	l.mu.Lock()
	sc := l.scope
	l.scope = nil
	unsubscribe := l.detach(sc)
	l.mu.Unlock()

	release(sc, unsubscribe)
}

// detach marks sc closed and takes its subscription. Must hold l.mu.
func (l *liveList[E]) detach(sc *scope) models.Unsubscribe {
	if sc == nil {
		return nil
	}
	sc.closed = true
	unsubscribe := sc.unsubscribe
	sc.unsubscribe = nil
	return unsubscribe
}

func release(sc *scope, unsubscribe models.Unsubscribe) {
	if sc == nil {
		return
	}
	sc.cancel()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (l *liveList[E]) attach(sc *scope, unsubscribe models.Unsubscribe) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if sc.closed {
		return false
	}
	sc.unsubscribe = unsubscribe
	return true
}

func (l *liveList[E]) isLive(sc *scope) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live(sc)
}

// live reports whether sc is still the current, open scope. Must hold l.mu.
func (l *liveList[E]) live(sc *scope) bool {
	return sc != nil && l.scope == sc && !sc.closed
}

func (l *liveList[E]) current() (*scope, state[E]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scope, l.state
}

// refresh fetches a full snapshot for sc and replaces the current one if sc
// is still live. On failure the previous snapshot is kept and the error is
// recorded in it. Items inserted locally after the fetch started are merged
// into the new snapshot.
func (l *liveList[E]) refresh(ctx context.Context, sc *scope) {
	l.mu.Lock()
	startSeq := l.appendSeq
	l.inFlight++
	l.mu.Unlock()

	next, err := l.fetch(ctx, sc.parentKey)

	l.mu.Lock()
	pending := l.settle(sc, startSeq)
	switch {
	case err != nil && sc.ctx.Err() != nil:
		l.mu.Unlock()
		return
	case err != nil:
		if l.live(sc) {
			l.lastErr = err
		}
		l.mu.Unlock()

		l.logger.Warn().Err(err).Str("func", "*liveList.refresh").Str("parent_key", sc.parentKey).Msg("refresh failed, keeping previous snapshot")
		l.notify()
		return
	case !l.live(sc):
		l.mu.Unlock()
		l.logger.Debug().Str("func", "*liveList.refresh").Str("parent_key", sc.parentKey).Msg("discarding refresh of a released scope")
		return
	}

	if len(pending) > 0 {
		next.items = l.order(Dedupe(append(next.items, pending...)), next.privilegedID)
	}
	l.state = next
	l.loaded = true
	l.lastErr = nil
	l.mu.Unlock()

	l.notify()
}

// settle ends one in-flight refresh of sc that started at startSeq and
// returns the items inserted into sc since. Must hold l.mu.
func (l *liveList[E]) settle(sc *scope, startSeq uint64) []E {
	var pending []E
	for _, a := range l.appends {
		if a.seq > startSeq && a.scope == sc {
			pending = append(pending, a.item)
		}
	}

	l.inFlight--
	if l.inFlight == 0 {
		l.appends = nil
	}

	return pending
}

// refreshCurrent refreshes the current scope with a context that ends when
// either ctx or the scope ends. A failed fetch is not returned; it is kept
// in the snapshot's Err.
func (l *liveList[E]) refreshCurrent(ctx context.Context) error {
	sc, _ := l.current()
	if sc == nil {
		return ErrNotBound
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sc.ctx, cancel)
	defer stop()

	l.refresh(ctx, sc)
	return nil
}

// insert adds item unless an entity with the same id is already present,
// then reorders the items. Returns false when nothing changed.
func (l *liveList[E]) insert(sc *scope, item E) bool {
	l.mu.Lock()
	if !l.live(sc) || contains(l.state.items, item.ID()) {
		l.mu.Unlock()
		return false
	}
	l.appendSeq++
	if l.inFlight > 0 {
		l.appends = append(l.appends, appended[E]{seq: l.appendSeq, scope: sc, item: item})
	}
	items := append(slices.Clone(l.state.items), item)
	l.state.items = l.order(items, l.state.privilegedID)
	l.mu.Unlock()

	l.notify()
	return true
}

func (l *liveList[E]) snapshot() Snapshot[E] {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot[E]{
		Items:        slices.Clone(l.state.items),
		PrivilegedID: l.state.privilegedID,
		ActingUserID: l.actingUserID,
		Loaded:       l.loaded,
		Err:          l.lastErr,
	}
	if l.scope != nil {
		snap.ParentKey = l.scope.parentKey
	}
	if snap.Items == nil {
		snap.Items = []E{}
	}

	return snap
}

// notify signals Changes without blocking; pending signals coalesce.
func (l *liveList[E]) notify() {
	select {
	case l.changes <- struct{}{}:
	default:
	}
}
