// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pickup/internal/config"
	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/utils"
	"github.com/MKhiriev/go-pickup/models"
)

const (
	restPrefix   = "/rest/v1/"
	realtimePath = "/realtime/v1/websocket"

	headerPrefer = "Prefer"

	preferRepresentation = "return=representation"
	preferMergeDups      = "resolution=merge-duplicates"

	defaultMinBackoff = 500 * time.Millisecond
	defaultMaxBackoff = 30 * time.Second
)

type httpCollectionAdapter struct {
	client *utils.HTTPClient

	token       string
	timeout     time.Duration
	realtimeURL string

	minBackoff time.Duration
	maxBackoff time.Duration
	refs       atomic.Uint64

	logger *logger.Logger
}

// NewHTTPCollectionAdapter constructs the REST and websocket implementation
// of [CollectionAdapter]. It fails when adapterCfg.HTTPAddress is empty or
// cannot be parsed as a URL.
func NewHTTPCollectionAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CollectionAdapter, error) {
	return newHTTPCollectionAdapter(adapterCfg, logger)
}

func newHTTPCollectionAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (*httpCollectionAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.Token, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsURL := client.BaseURL()
	switch wsURL.Scheme {
	case "https":
		wsURL.Scheme = "wss"
	default:
		wsURL.Scheme = "ws"
	}
	wsURL.Path += realtimePath

	return &httpCollectionAdapter{
		client:      client,
		token:       strings.TrimSpace(adapterCfg.Token),
		timeout:     adapterCfg.RequestTimeout,
		realtimeURL: wsURL.String(),
		minBackoff:  defaultMinBackoff,
		maxBackoff:  defaultMaxBackoff,
		logger:      logger,
	}, nil
}

// List implements [CollectionAdapter] with GET /rest/v1/{collection}.
func (h *httpCollectionAdapter) List(ctx context.Context, collection string, query models.Query) ([]models.Row, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query.Values()).
		Get(restPrefix + collection)
	if err != nil {
		return nil, transportError("list "+collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.Row
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, transportError("decode "+collection, err)
	}

	return rows, nil
}

// Single implements [CollectionAdapter]. It lists with limit 1.
func (h *httpCollectionAdapter) Single(ctx context.Context, collection string, query models.Query) (models.Row, error) {
	rows, err := h.List(ctx, collection, query.WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w: %s matching %v", ErrTransport, ErrNotFound, collection, query.Values().Encode())
	}

	return rows[0], nil
}

// Insert implements [CollectionAdapter] with POST /rest/v1/{collection}.
func (h *httpCollectionAdapter) Insert(ctx context.Context, collection string, row models.Row, upsert bool) (models.Row, error) {
	prefer := preferRepresentation
	if upsert {
		prefer += "," + preferMergeDups
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, prefer).
		SetBody(row).
		Post(restPrefix + collection)
	if err != nil {
		return nil, transportError("insert into "+collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var stored []models.Row
	if err = json.Unmarshal(resp.Body(), &stored); err != nil {
		return nil, transportError("decode "+collection, err)
	}
	if len(stored) == 0 {
		return nil, fmt.Errorf("%w: insert into %s returned no rows", ErrTransport, collection)
	}

	return stored[0], nil
}

// Delete implements [CollectionAdapter] with DELETE /rest/v1/{collection}.
func (h *httpCollectionAdapter) Delete(ctx context.Context, collection string, query models.Query) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query.Values()).
		Delete(restPrefix + collection)
	if err != nil {
		return transportError("delete from "+collection, err)
	}

	return mapHTTPError(resp)
}

func (h *httpCollectionAdapter) nextRef() string {
	return fmt.Sprintf("%d", h.refs.Add(1))
}
