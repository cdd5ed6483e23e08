// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/models"
)

// Thread is a live chat thread. Sent messages and inserted messages from the
// change feed are appended locally; any other change refreshes the thread.
type Thread struct {
	list   *liveList[models.Message]
	source MessageSource
	ids    utils.IDGenerator

	actingUserID string
	authorName   string
	now          func() time.Time
	logger       *logger.Logger
}

// NewThread returns an unbound thread that sends as actingUserID under
// authorName. ids generates message ids.
func NewThread(source MessageSource, actingUserID, authorName string, ids utils.IDGenerator, log *logger.Logger) *Thread {
	t := &Thread{
		source:       source,
		ids:          ids,
		actingUserID: actingUserID,
		authorName:   authorName,
		now:          time.Now,
		logger:       log,
	}
	t.list = newLiveList[models.Message](source, t.fetch, actingUserID, log)
	t.list.onEvent = t.onEvent
	t.list.order = func(messages []models.Message, _ string) []models.Message {
		return Chronological(messages)
	}

	return t
}

func (t *Thread) Bind(ctx context.Context, threadID string) error {
	return t.list.bind(ctx, threadID)
}

func (t *Thread) Close() {
	t.list.close()
}

// Refresh reloads the full thread. A failed fetch keeps the previous
// snapshot and is reported in Snapshot().Err; only ErrNotBound is returned.
func (t *Thread) Refresh(ctx context.Context) error {
	return t.list.refreshCurrent(ctx)
}

func (t *Thread) Focus(ctx context.Context) error {
	return t.list.refreshCurrent(ctx)
}

func (t *Thread) Snapshot() Snapshot[models.Message] {
	return t.list.snapshot()
}

func (t *Thread) Changes() <-chan struct{} {
	return t.list.changes
}

func (t *Thread) LastError() error {
	return t.list.snapshot().Err
}

// Send posts body to the bound thread as the acting user and appends the
// stored message. A failed send refreshes the thread once.
func (t *Thread) Send(ctx context.Context, body string) (models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return models.Message{}, ErrEmptyMessage
	}

	sc, _ := t.list.current()
	if sc == nil {
		return models.Message{}, ErrNotBound
	}

	msg := models.Message{
		MessageID:  t.ids.Generate(),
		ThreadID:   sc.parentKey,
		UserID:     t.actingUserID,
		AuthorName: t.authorName,
		Body:       body,
		CreatedAt:  t.now().UTC(),
	}

	stored, err := t.source.Send(ctx, msg)
	if err != nil {
		t.logger.Err(err).Str("func", "*Thread.Send").Str("thread_id", sc.parentKey).Msg("send failed, refreshing")
		t.list.refresh(sc.ctx, sc)
		return models.Message{}, fmt.Errorf("send to %s: %w", sc.parentKey, err)
	}

	t.list.insert(sc, stored)
	return stored, nil
}

func (t *Thread) onEvent(sc *scope, ev Event[models.Message]) {
	if ev.Type == models.ChangeInsert && ev.Record != nil && ev.Record.ThreadID == sc.parentKey {
		t.list.insert(sc, *ev.Record)
		return
	}
	t.list.refresh(sc.ctx, sc)
}

func (t *Thread) fetch(ctx context.Context, threadID string) (state[models.Message], error) {
	messages, err := t.source.List(ctx, threadID)
	if err != nil {
		return state[models.Message]{}, fmt.Errorf("list %s: %w", threadID, err)
	}

	return state[models.Message]{items: Chronological(messages)}, nil
}
