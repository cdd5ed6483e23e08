// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(size int) *Broker {
	return NewBroker(config.Realtime{BufferSize: size}, logger.Nop())
}

func playerJoined(gameID, userID string) models.ChangeEvent {
	return models.ChangeEvent{
		Type:       models.ChangeInsert,
		Collection: models.CollectionGamePlayers,
		Record:     models.Row{"game_id": gameID, "user_id": userID},
	}
}

func receive(t *testing.T, sub *Subscription) models.ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscription closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return models.ChangeEvent{}
	}
}

func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

// ── Publish ──

func TestBroker_PublishMatchesFilter(t *testing.T) {
	b := newTestBroker(4)

	game42 := b.Subscribe(models.CollectionGamePlayers, models.Eq("game_id", "game-42"))
	game7 := b.Subscribe(models.CollectionGamePlayers, models.Eq("game_id", "game-7"))
	all := b.Subscribe(models.CollectionGamePlayers, models.Filter{})
	messages := b.Subscribe(models.CollectionMessages, models.Filter{})

	b.Publish(context.Background(), playerJoined("game-42", "u1"))

	assert.Equal(t, "u1", receive(t, game42).Record["user_id"])
	assert.Equal(t, "u1", receive(t, all).Record["user_id"])
	assertNoEvent(t, game7)
	assertNoEvent(t, messages)
}

func TestBroker_DeleteMatchesOldRecord(t *testing.T) {
	b := newTestBroker(4)
	sub := b.Subscribe(models.CollectionGamePlayers, models.Eq("game_id", "game-42"))

	b.Publish(context.Background(), models.ChangeEvent{
		Type:       models.ChangeDelete,
		Collection: models.CollectionGamePlayers,
		OldRecord:  models.Row{"game_id": "game-42", "user_id": "u1"},
	})

	assert.Equal(t, models.ChangeDelete, receive(t, sub).Type)
}

func TestBroker_FullBufferDropsEvents(t *testing.T) {
	b := newTestBroker(1)
	sub := b.Subscribe(models.CollectionGamePlayers, models.Filter{})

	b.Publish(context.Background(), playerJoined("g", "u1"))
	b.Publish(context.Background(), playerJoined("g", "u2"))
	b.Publish(context.Background(), playerJoined("g", "u3"))

	assert.Equal(t, "u1", receive(t, sub).Record["user_id"])
	assertNoEvent(t, sub)
	assert.Equal(t, uint64(2), sub.Dropped())
}

func TestBroker_DefaultBufferSize(t *testing.T) {
	b := newTestBroker(0)
	assert.Equal(t, defaultBufferSize, b.bufferSize)
}

// ── Close ──

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	b := newTestBroker(4)
	sub := b.Subscribe(models.CollectionGamePlayers, models.Filter{})
	require.Equal(t, 1, b.Subscribers(models.CollectionGamePlayers))

	sub.Close()
	sub.Close()

	assert.Equal(t, 0, b.Subscribers(models.CollectionGamePlayers))
	_, ok := <-sub.Events()
	assert.False(t, ok)

	b.Publish(context.Background(), playerJoined("g", "u1"))
}

func TestBroker_Close(t *testing.T) {
	b := newTestBroker(4)
	sub := b.Subscribe(models.CollectionGamePlayers, models.Filter{})

	b.Close()
	_, ok := <-sub.Events()
	assert.False(t, ok)

	sub.Close()

	late := b.Subscribe(models.CollectionGamePlayers, models.Filter{})
	_, ok = <-late.Events()
	assert.False(t, ok)
	assert.Equal(t, 0, b.Subscribers(models.CollectionGamePlayers))
}

func TestBroker_ConcurrentPublishAndClose(t *testing.T) {
	b := newTestBroker(8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		sub := b.Subscribe(models.CollectionGamePlayers, models.Filter{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 50 {
				b.Publish(context.Background(), playerJoined("g", "u"))
			}
		}()
		go func() {
			defer wg.Done()
			sub.Close()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, b.Subscribers(models.CollectionGamePlayers))
}
