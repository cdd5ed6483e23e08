// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/mock"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/MKhiriev/go-pickup/internal/service"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRealtimeServer(t *testing.T) (*Handler, *realtime.Broker, *mock.MockCollectionService, string) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().ParseToken(gomock.Any(), goodToken).Return(models.Token{UserID: "u1"}, nil).AnyTimes()
	auth.EXPECT().ParseToken(gomock.Any(), badToken).Return(models.Token{}, errTokenRejected).AnyTimes()

	collections := mock.NewMockCollectionService(ctrl)
	broker := realtime.NewBroker(config.Realtime{BufferSize: 8}, logger.Nop())
	t.Cleanup(broker.Close)

	h := NewHandler(&service.Services{AuthService: auth, CollectionService: collections}, broker, time.Second, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	t.Cleanup(h.Close)

	return h, broker, collections, "ws" + strings.TrimPrefix(srv.URL, "http") + "/realtime/v1/websocket"
}

func dialRealtime(t *testing.T, ctx context.Context, url, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, resp, err := websocket.Dial(ctx, url, &websocket.DialOptions{HTTPHeader: header})
	if conn != nil {
		t.Cleanup(func() { conn.CloseNow() })
	}
	return conn, resp, err
}

func TestRealtime_SubscribeAndReceive(t *testing.T) {
	_, broker, collections, url := newRealtimeServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collections.EXPECT().Authorize(gomock.Any(), models.CollectionGamePlayers, models.Eq("game_id", "g1")).DoAndReturn(
		func(ctx context.Context, _ string, _ models.Filter) error {
			userID, ok := userFrom(ctx)
			assert.True(t, ok)
			assert.Equal(t, "u1", userID)
			return nil
		})

	conn, _, err := dialRealtime(t, ctx, url, goodToken)
	require.NoError(t, err)

	require.NoError(t, wsjson.Write(ctx, conn, models.RealtimeFrame{
		Type: models.FrameSubscribe, Ref: "1", Collection: models.CollectionGamePlayers, Filter: "game_id=eq.g1",
	}))

	var ack models.RealtimeFrame
	require.NoError(t, wsjson.Read(ctx, conn, &ack))
	require.Equal(t, models.FrameSubscribed, ack.Type)

	broker.Publish(ctx, models.ChangeEvent{
		Type:       models.ChangeInsert,
		Collection: models.CollectionGamePlayers,
		Record:     models.Row{"game_id": "g1", "user_id": "u2"},
	})

	var change models.RealtimeFrame
	require.NoError(t, wsjson.Read(ctx, conn, &change))
	assert.Equal(t, models.FrameChange, change.Type)
	assert.Equal(t, "1", change.Ref)
	require.NotNil(t, change.Event)
	assert.Equal(t, "u2", change.Event.Record["user_id"])
}

func TestRealtime_RejectsBadToken(t *testing.T) {
	_, _, _, url := newRealtimeServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := dialRealtime(t, ctx, url, badToken)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRealtime_CloseEndsSessions(t *testing.T) {
	h, broker, collections, url := newRealtimeServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collections.EXPECT().Authorize(gomock.Any(), models.CollectionMessages, models.Filter{}).Return(nil)

	conn, _, err := dialRealtime(t, ctx, url, goodToken)
	require.NoError(t, err)

	require.NoError(t, wsjson.Write(ctx, conn, models.RealtimeFrame{Type: models.FrameSubscribe, Ref: "1", Collection: models.CollectionMessages}))
	var ack models.RealtimeFrame
	require.NoError(t, wsjson.Read(ctx, conn, &ack))
	require.Equal(t, 1, broker.Subscribers(models.CollectionMessages))

	h.Close()

	var frame models.RealtimeFrame
	assert.Error(t, wsjson.Read(ctx, conn, &frame))
	assert.Eventually(t, func() bool {
		return broker.Subscribers(models.CollectionMessages) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
