// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// realtimeServer acknowledges every subscribe frame and hands the open
// connection to serve. It counts accepted connections.
type realtimeServer struct {
	*httptest.Server
	conns atomic.Int32
	auth  atomic.Value
}

func newRealtimeServer(t *testing.T, serve func(ctx context.Context, n int32, conn *websocket.Conn, sub models.RealtimeFrame)) *realtimeServer {
	t.Helper()
	rs := &realtimeServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != realtimePath {
			http.NotFound(w, r)
			return
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		rs.auth.Store(r.Header.Get("Authorization"))
		n := rs.conns.Add(1)
		ctx := r.Context()

		var sub models.RealtimeFrame
		if err = wsjson.Read(ctx, conn, &sub); err != nil {
			return
		}
		serve(ctx, n, conn, sub)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func ack(ctx context.Context, conn *websocket.Conn, sub models.RealtimeFrame) error {
	return wsjson.Write(ctx, conn, models.RealtimeFrame{Type: models.FrameSubscribed, Ref: sub.Ref})
}

// drain blocks until the client goes away.
func drain(ctx context.Context, conn *websocket.Conn) {
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func collect(events chan models.ChangeEvent) func(models.ChangeEvent) {
	return func(ev models.ChangeEvent) {
		events <- ev
	}
}

func waitEvent(t *testing.T, events chan models.ChangeEvent) models.ChangeEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
		return models.ChangeEvent{}
	}
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestSubscribe_DeliversChanges(t *testing.T) {
	srv := newRealtimeServer(t, func(ctx context.Context, _ int32, conn *websocket.Conn, sub models.RealtimeFrame) {
		assert.Equal(t, models.FrameSubscribe, sub.Type)
		assert.Equal(t, models.CollectionGamePlayers, sub.Collection)
		assert.Equal(t, "game_id=eq.g1", sub.Filter)
		if !assert.NoError(t, ack(ctx, conn, sub)) {
			return
		}

		_ = wsjson.Write(ctx, conn, models.RealtimeFrame{
			Type:  models.FrameChange,
			Ref:   "someone-else",
			Event: &models.ChangeEvent{Type: models.ChangeDelete},
		})
		_ = wsjson.Write(ctx, conn, models.RealtimeFrame{
			Type: models.FrameChange,
			Ref:  sub.Ref,
			Event: &models.ChangeEvent{
				Type:       models.ChangeInsert,
				Collection: models.CollectionGamePlayers,
				Record:     models.Row{"game_id": "g1", "user_id": "u2"},
			},
		})
		drain(ctx, conn)
	})

	a := newTestAdapter(t, srv.URL)
	events := make(chan models.ChangeEvent, 4)
	unsubscribe, err := a.Subscribe(context.Background(), models.CollectionGamePlayers, models.Eq("game_id", "g1"), collect(events))
	require.NoError(t, err)
	defer unsubscribe()

	ev := waitEvent(t, events)
	assert.Equal(t, models.ChangeInsert, ev.Type)
	assert.Equal(t, "u2", ev.Record["user_id"])
	assert.Equal(t, "Bearer test-token", srv.auth.Load())
}

func TestSubscribe_Rejected(t *testing.T) {
	srv := newRealtimeServer(t, func(ctx context.Context, _ int32, conn *websocket.Conn, sub models.RealtimeFrame) {
		_ = wsjson.Write(ctx, conn, models.RealtimeFrame{Type: models.FrameError, Ref: sub.Ref, Error: "unknown collection"})
	})

	_, err := newTestAdapter(t, srv.URL).Subscribe(context.Background(), "nope", models.Filter{}, func(models.ChangeEvent) {})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubscriptionRejected)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestSubscribe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Subscribe(context.Background(), "games", models.Filter{}, func(models.ChangeEvent) {})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSubscribe_ReconnectDeliversResync(t *testing.T) {
	srv := newRealtimeServer(t, func(ctx context.Context, n int32, conn *websocket.Conn, sub models.RealtimeFrame) {
		if ack(ctx, conn, sub) != nil {
			return
		}
		if n == 1 {
			_ = conn.Close(websocket.StatusGoingAway, "restart")
			return
		}
		drain(ctx, conn)
	})

	a := newTestAdapter(t, srv.URL)
	a.minBackoff = 10 * time.Millisecond
	a.maxBackoff = 50 * time.Millisecond

	events := make(chan models.ChangeEvent, 4)
	unsubscribe, err := a.Subscribe(context.Background(), models.CollectionMessages, models.Eq("thread_id", "t1"), collect(events))
	require.NoError(t, err)
	defer unsubscribe()

	ev := waitEvent(t, events)
	assert.Equal(t, models.ChangeResync, ev.Type)
	assert.Equal(t, models.CollectionMessages, ev.Collection)
	assert.GreaterOrEqual(t, srv.conns.Load(), int32(2))
}

// ── Unsubscribe ─────────────────────────────────────────────────────────────

func TestUnsubscribe_ClosesConnectionOnce(t *testing.T) {
	closed := make(chan struct{})
	srv := newRealtimeServer(t, func(ctx context.Context, _ int32, conn *websocket.Conn, sub models.RealtimeFrame) {
		if ack(ctx, conn, sub) != nil {
			return
		}
		drain(ctx, conn)
		close(closed)
	})

	a := newTestAdapter(t, srv.URL)
	unsubscribe, err := a.Subscribe(context.Background(), "games", models.Filter{}, func(models.ChangeEvent) {})
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("server connection was not closed")
	}
	assert.Equal(t, int32(1), srv.conns.Load())
}
