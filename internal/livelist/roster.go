// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Roster is a live membership list (game players, community members).
//
// Join and Leave do not touch the local snapshot on success: the change
// notification that follows the remote write triggers the refresh. A failed
// write triggers exactly one refresh so the list reflects the remote truth.
type Roster[E Entity] struct {
	list   *liveList[E]
	source Membership[E]

	actingUserID string
	logger       *logger.Logger
}

// NewRoster returns an unbound roster acting as actingUserID.
func NewRoster[E Entity](source Membership[E], actingUserID string, log *logger.Logger) *Roster[E] {
	r := &Roster[E]{
		source:       source,
		actingUserID: actingUserID,
		logger:       log,
	}
	r.list = newLiveList[E](source, r.fetch, actingUserID, log)
	r.list.order = func(items []E, privilegedID string) []E {
		return Arrange(items, privilegedID, actingUserID)
	}

	return r
}

// Bind attaches the roster to parentKey, releasing any previous binding
// first. Items of a previous parent key are cleared.
func (r *Roster[E]) Bind(ctx context.Context, parentKey string) error {
	return r.list.bind(ctx, parentKey)
}

// Close releases the change subscription. It is safe to call repeatedly.
func (r *Roster[E]) Close() {
	r.list.close()
}

// Refresh reloads the full roster. A failed fetch keeps the previous
// snapshot and is reported in Snapshot().Err; only ErrNotBound is returned.
func (r *Roster[E]) Refresh(ctx context.Context) error {
	return r.list.refreshCurrent(ctx)
}

// Focus is called when the roster becomes visible again.
func (r *Roster[E]) Focus(ctx context.Context) error {
	return r.list.refreshCurrent(ctx)
}

func (r *Roster[E]) Snapshot() Snapshot[E] {
	return r.list.snapshot()
}

// Changes signals after every snapshot change. Signals coalesce.
func (r *Roster[E]) Changes() <-chan struct{} {
	return r.list.changes
}

// LastError returns the error of the last failed refresh, nil after a
// successful one.
func (r *Roster[E]) LastError() error {
	return r.list.snapshot().Err
}

// Joined reports whether the acting user is in the current snapshot.
func (r *Roster[E]) Joined() bool {
	_, st := r.list.current()
	return contains(st.items, r.actingUserID)
}

// Join adds the acting user to the bound parent. It is a no-op when the
// acting user is already listed.
func (r *Roster[E]) Join(ctx context.Context) error {
	sc, st := r.list.current()
	if sc == nil {
		return ErrNotBound
	}
	if contains(st.items, r.actingUserID) {
		r.logger.Debug().Str("func", "*Roster.Join").Str("parent_key", sc.parentKey).Msg("already joined")
		return nil
	}

	if err := r.source.Join(ctx, sc.parentKey, r.actingUserID); err != nil {
		r.logger.Err(err).Str("func", "*Roster.Join").Str("parent_key", sc.parentKey).Msg("join failed, refreshing")
		r.list.refresh(sc.ctx, sc)
		return fmt.Errorf("join %s: %w", sc.parentKey, err)
	}

	return nil
}

// Leave removes the acting user from the bound parent.
func (r *Roster[E]) Leave(ctx context.Context) error {
	sc, _ := r.list.current()
	if sc == nil {
		return ErrNotBound
	}

	if err := r.source.Leave(ctx, sc.parentKey, r.actingUserID); err != nil {
		r.logger.Err(err).Str("func", "*Roster.Leave").Str("parent_key", sc.parentKey).Msg("leave failed, refreshing")
		r.list.refresh(sc.ctx, sc)
		return fmt.Errorf("leave %s: %w", sc.parentKey, err)
	}

	return nil
}

// fetch loads the roster and the privileged id concurrently.
func (r *Roster[E]) fetch(ctx context.Context, parentKey string) (state[E], error) {
	var (
		items        []E
		privilegedID string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if items, err = r.source.List(gctx, parentKey); err != nil {
			return fmt.Errorf("list %s: %w", parentKey, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if privilegedID, err = r.source.PrivilegedID(gctx, parentKey); err != nil {
			return fmt.Errorf("privileged id of %s: %w", parentKey, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return state[E]{}, err
	}

	return state[E]{
		items:        Arrange(items, privilegedID, r.actingUserID),
		privilegedID: privilegedID,
	}, nil
}
