// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pickup/internal/livelist"
	"github.com/MKhiriev/go-pickup/internal/logger"
)

const defaultRefreshInterval = time.Minute

// FocusRefresher periodically calls Focus on every registered live list, so
// a list that missed change notifications still converges.
type FocusRefresher struct {
	interval time.Duration

	mu     sync.Mutex
	lists  map[uint64]livelist.Focuser
	nextID uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewFocusRefresher returns an idle refresher. A zero or negative interval
// defaults to one minute.
func NewFocusRefresher(interval time.Duration, logger *logger.Logger) *FocusRefresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &FocusRefresher{
		interval: interval,
		lists:    make(map[uint64]livelist.Focuser),
		logger:   logger,
	}
}

// Register adds list to the refresh round. The returned function removes it
// again and may be called more than once.
func (f *FocusRefresher) Register(list livelist.Focuser) func() {
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.lists[id] = list
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.lists, id)
		f.mu.Unlock()
	}
}

// Start stops a running round first, then ticks every interval until ctx is
// cancelled or Stop is called.
func (f *FocusRefresher) Start(ctx context.Context) {
	f.Stop()

	f.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.wg.Add(1)
	f.mu.Unlock()

	go func() {
		defer f.wg.Done()
		t := time.NewTicker(f.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				f.refresh(jobCtx)
			}
		}
	}()
}

func (f *FocusRefresher) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	f.wg.Wait()
}

// refresh focuses a snapshot of the registered lists, so Focus never runs
// under the refresher's lock.
func (f *FocusRefresher) refresh(ctx context.Context) {
	f.mu.Lock()
	lists := make([]livelist.Focuser, 0, len(f.lists))
	for _, list := range f.lists {
		lists = append(lists, list)
	}
	f.mu.Unlock()

	for _, list := range lists {
		if ctx.Err() != nil {
			return
		}
		if err := list.Focus(ctx); err != nil {
			f.logger.Debug().Err(err).Str("func", "*FocusRefresher.refresh").Msg("background refresh failed")
		}
	}
}
