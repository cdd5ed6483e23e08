// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-pickup/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sethvargo/go-retry"
)

type subscription struct {
	adapter    *httpCollectionAdapter
	ref        string
	collection string
	filter     string
	onEvent    func(models.ChangeEvent)

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Subscribe implements [CollectionAdapter]. The first connection is dialed
// synchronously so that a rejected subscription is reported to the caller;
// later reconnects happen in the background.
func (h *httpCollectionAdapter) Subscribe(ctx context.Context, collection string, filter models.Filter, onEvent func(models.ChangeEvent)) (models.Unsubscribe, error) {
	s := &subscription{
		adapter:    h,
		ref:        h.nextRef(),
		collection: collection,
		onEvent:    onEvent,
		done:       make(chan struct{}),
	}
	if filter.Column != "" {
		s.filter = filter.String()
	}

	conn, err := s.dial(ctx)
	if err != nil {
		return nil, transportError("subscribe to "+collection, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.run(subCtx, conn)

	h.logger.Debug().Str("func", "*httpCollectionAdapter.Subscribe").
		Str("collection", collection).Str("filter", s.filter).Str("ref", s.ref).
		Msg("subscribed")

	return s.unsubscribe, nil
}

// unsubscribe stops the subscription and waits for its goroutine to exit.
func (s *subscription) unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

func (s *subscription) run(ctx context.Context, conn *websocket.Conn) {
	defer close(s.done)
	log := s.adapter.logger

	for {
		err := s.read(ctx, conn)
		conn.CloseNow()
		if ctx.Err() != nil {
			return
		}
		log.Warn().Err(err).Str("func", "*subscription.run").Str("ref", s.ref).Msg("subscription dropped, reconnecting")

		if conn, err = s.reconnect(ctx); err != nil {
			if ctx.Err() == nil {
				log.Err(err).Str("func", "*subscription.run").Str("ref", s.ref).Msg("giving up on subscription")
			}
			return
		}

		s.onEvent(models.ChangeEvent{Type: models.ChangeResync, Collection: s.collection})
	}
}

// read delivers change frames until the connection fails or ctx ends.
func (s *subscription) read(ctx context.Context, conn *websocket.Conn) error {
	for {
		var frame models.RealtimeFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			return err
		}

		switch frame.Type {
		case models.FrameChange:
			if frame.Ref == s.ref && frame.Event != nil {
				s.onEvent(*frame.Event)
			}
		case models.FrameError:
			s.adapter.logger.Warn().Str("func", "*subscription.read").Str("ref", s.ref).Str("error", frame.Error).Msg("realtime error frame")
		}
	}
}

func (s *subscription) reconnect(ctx context.Context) (*websocket.Conn, error) {
	backoff := retry.NewExponential(s.adapter.minBackoff)
	backoff = retry.WithCappedDuration(s.adapter.maxBackoff, backoff)
	backoff = retry.WithJitterPercent(10, backoff)

	var conn *websocket.Conn
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := s.dial(ctx)
		if err != nil {
			s.adapter.logger.Debug().Err(err).Str("func", "*subscription.reconnect").Str("ref", s.ref).Msg("redial failed")
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})

	return conn, err
}

// dial opens the realtime websocket and waits for the subscription to be
// acknowledged.
func (s *subscription) dial(ctx context.Context) (*websocket.Conn, error) {
	h := s.adapter
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	opts := &websocket.DialOptions{HTTPHeader: http.Header{}}
	if h.token != "" {
		opts.HTTPHeader.Set("Authorization", "Bearer "+h.token)
	}

	conn, resp, err := websocket.Dial(ctx, h.realtimeURL, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return nil, err
	}

	subscribe := models.RealtimeFrame{
		Type:       models.FrameSubscribe,
		Ref:        s.ref,
		Collection: s.collection,
		Filter:     s.filter,
	}
	if err = wsjson.Write(ctx, conn, subscribe); err != nil {
		conn.CloseNow()
		return nil, fmt.Errorf("send subscribe frame: %w", err)
	}

	var ack models.RealtimeFrame
	if err = wsjson.Read(ctx, conn, &ack); err != nil {
		conn.CloseNow()
		return nil, fmt.Errorf("read subscribe ack: %w", err)
	}
	if ack.Type != models.FrameSubscribed || ack.Ref != s.ref {
		conn.CloseNow()
		return nil, fmt.Errorf("%w: %s", ErrSubscriptionRejected, ack.Error)
	}

	return conn, nil
}
