// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/models"
)

const defaultBufferSize = 64

// Broker is the in-process change fan-out. It implements [Publisher] and
// [Subscriber].
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]*Subscription
	closed bool

	nextID     atomic.Uint64
	bufferSize int
	logger     *logger.Logger
}

func NewBroker(cfg config.Realtime, logger *logger.Logger) *Broker {
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}

	return &Broker{
		subs:       make(map[string]map[uint64]*Subscription),
		bufferSize: size,
		logger:     logger,
	}
}

// Subscription receives the events of one collection that match its filter.
type Subscription struct {
	id         uint64
	collection string
	filter     models.Filter

	events  chan models.ChangeEvent
	broker  *Broker
	once    sync.Once
	dropped atomic.Uint64
}

// Subscribe registers a subscription. On a closed broker the returned
// subscription's channel is already closed.
func (b *Broker) Subscribe(collection string, filter models.Filter) *Subscription {
	sub := &Subscription{
		id:         b.nextID.Add(1),
		collection: collection,
		filter:     filter,
		events:     make(chan models.ChangeEvent, b.bufferSize),
		broker:     b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		sub.once.Do(func() { close(sub.events) })
		return sub
	}

	if b.subs[collection] == nil {
		b.subs[collection] = make(map[uint64]*Subscription)
	}
	b.subs[collection][sub.id] = sub

	return sub
}

// Publish delivers event to every matching subscription without blocking.
func (b *Broker) Publish(ctx context.Context, event models.ChangeEvent) {
	log := logger.FromContext(ctx)

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[event.Collection] {
		if !sub.matches(event) {
			continue
		}

		select {
		case sub.events <- event:
		default:
			dropped := sub.dropped.Add(1)
			log.Warn().Str("func", "*Broker.Publish").
				Str("collection", event.Collection).
				Uint64("subscription", sub.id).
				Uint64("dropped", dropped).
				Msg("subscriber buffer full, event dropped")
		}
	}
}

// Subscribers returns the number of open subscriptions on collection.
func (b *Broker) Subscribers(collection string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[collection])
}

// Close closes every subscription. Later subscriptions are closed on creation.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for collection, subs := range b.subs {
		for _, sub := range subs {
			sub.once.Do(func() { close(sub.events) })
		}
		delete(b.subs, collection)
	}
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.subs[sub.collection]; ok {
		delete(subs, sub.id)
		if len(subs) == 0 {
			delete(b.subs, sub.collection)
		}
	}
	sub.once.Do(func() { close(sub.events) })
}

// Events is closed once the subscription is closed.
func (s *Subscription) Events() <-chan models.ChangeEvent {
	return s.events
}

// Dropped reports how many events were discarded because the buffer was full.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Close unregisters the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.broker.remove(s)
}

func (s *Subscription) matches(event models.ChangeEvent) bool {
	if s.filter.Column == "" {
		return true
	}
	return s.filter.Matches(event.Row())
}
