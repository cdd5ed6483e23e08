// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/internal/realtime"
	"github.com/coder/websocket"
)

// realtime upgrades GET /realtime/v1/websocket and serves the subscription
// protocol until either side goes away or the handler is closed.
func (h *Handler) realtime(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.realtime").Msg("websocket accept failed")
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(h.done, cancel)
	defer stop()

	session := realtime.NewSession(conn, h.subscriber, h.services.CollectionService.Authorize, log)
	err = session.Run(ctx)

	status := websocket.StatusNormalClosure
	reason := "closing"
	switch {
	case h.done.Err() != nil:
		status, reason = websocket.StatusGoingAway, "server shutting down"
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure, websocket.CloseStatus(err) == websocket.StatusGoingAway:
	default:
		log.Warn().Err(err).Str("func", "*Handler.realtime").Msg("realtime session ended with error")
		status, reason = websocket.StatusInternalError, "internal error"
	}

	conn.Close(status, reason)
}
