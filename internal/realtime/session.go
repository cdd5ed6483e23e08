// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"
)

const outboundBuffer = 32

// AuthorizeFunc decides whether the connection's user may subscribe to
// collection with filter.
type AuthorizeFunc func(ctx context.Context, collection string, filter models.Filter) error

// Session serves the realtime protocol on one websocket connection.
type Session struct {
	conn       *websocket.Conn
	subscriber Subscriber
	authorize  AuthorizeFunc

	out        chan models.RealtimeFrame
	subs       map[string]*Subscription
	forwarders sync.WaitGroup

	logger *logger.Logger
}

func NewSession(conn *websocket.Conn, subscriber Subscriber, authorize AuthorizeFunc, logger *logger.Logger) *Session {
	return &Session{
		conn:       conn,
		subscriber: subscriber,
		authorize:  authorize,
		out:        make(chan models.RealtimeFrame, outboundBuffer),
		subs:       make(map[string]*Subscription),
		logger:     logger,
	}
}

// Run reads and writes frames until ctx is done or the connection fails.
// Every subscription opened on the session is closed before Run returns.
func (s *Session) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.readLoop(gctx) })
	g.Go(func() error { return s.writeLoop(gctx) })

	err := g.Wait()

	for ref, sub := range s.subs {
		sub.Close()
		delete(s.subs, ref)
	}
	s.forwarders.Wait()

	return err
}

func (s *Session) readLoop(ctx context.Context) error {
	for {
		var frame models.RealtimeFrame
		if err := wsjson.Read(ctx, s.conn, &frame); err != nil {
			return err
		}

		var err error
		switch frame.Type {
		case models.FrameSubscribe:
			err = s.subscribe(ctx, frame)
		case models.FrameUnsubscribe:
			err = s.unsubscribe(frame.Ref)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownFrame, frame.Type)
		}

		if err != nil {
			s.logger.Warn().Err(err).Str("func", "*Session.readLoop").Str("ref", frame.Ref).Msg("rejected realtime frame")
			s.send(ctx, models.RealtimeFrame{Type: models.FrameError, Ref: frame.Ref, Error: err.Error()})
		}
	}
}

func (s *Session) writeLoop(ctx context.Context) error {
	for {
		select {
		case frame := <-s.out:
			if err := wsjson.Write(ctx, s.conn, frame); err != nil {
				s.logger.Err(err).Str("func", "*Session.writeLoop").Str("ref", frame.Ref).Msg("failed to write realtime frame")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Session) subscribe(ctx context.Context, frame models.RealtimeFrame) error {
	if frame.Collection == "" {
		return ErrMissingCollection
	}
	if _, ok := s.subs[frame.Ref]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRef, frame.Ref)
	}

	filter, err := parseSubscriptionFilter(frame.Filter)
	if err != nil {
		return err
	}

	if s.authorize != nil {
		if err = s.authorize(ctx, frame.Collection, filter); err != nil {
			return err
		}
	}

	sub := s.subscriber.Subscribe(frame.Collection, filter)
	s.subs[frame.Ref] = sub
	s.send(ctx, models.RealtimeFrame{Type: models.FrameSubscribed, Ref: frame.Ref})

	s.forwarders.Add(1)
	go s.forward(ctx, frame.Ref, sub)

	s.logger.Debug().Str("collection", frame.Collection).Str("filter", frame.Filter).Str("ref", frame.Ref).Msg("subscription opened")
	return nil
}

func (s *Session) unsubscribe(ref string) error {
	sub, ok := s.subs[ref]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}

	sub.Close()
	delete(s.subs, ref)
	return nil
}

// forward copies a subscription's events onto the outbound queue until the
// subscription is closed.
func (s *Session) forward(ctx context.Context, ref string, sub *Subscription) {
	defer s.forwarders.Done()

	for event := range sub.Events() {
		s.send(ctx, models.RealtimeFrame{Type: models.FrameChange, Ref: ref, Event: &event})
	}
}

func (s *Session) send(ctx context.Context, frame models.RealtimeFrame) {
	select {
	case s.out <- frame:
	case <-ctx.Done():
	}
}

func parseSubscriptionFilter(raw string) (models.Filter, error) {
	if raw == "" {
		return models.Filter{}, nil
	}

	filter, err := models.ParseFilter(raw)
	if err != nil {
		return models.Filter{}, err
	}
	if filter.Operator != models.OpEq {
		return models.Filter{}, fmt.Errorf("%w: %s", ErrUnsupportedFilter, raw)
	}

	return filter, nil
}
