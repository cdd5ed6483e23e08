// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Realtime frame types. Clients send subscribe and unsubscribe, the server
// answers with subscribed, change and error.
const (
	FrameSubscribe   = "subscribe"
	FrameUnsubscribe = "unsubscribe"
	FrameSubscribed  = "subscribed"
	FrameChange      = "change"
	FrameError       = "error"
)

// RealtimeFrame is the JSON frame exchanged over the realtime websocket.
// Ref correlates a subscription with the frames delivered for it.
type RealtimeFrame struct {
	Type       string       `json:"type"`
	Ref        string       `json:"ref"`
	Collection string       `json:"collection,omitempty"`
	Filter     string       `json:"filter,omitempty"`
	Event      *ChangeEvent `json:"event,omitempty"`
	Error      string       `json:"error,omitempty"`
}
