// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a chat message posted into a thread. MessageID is generated on
// the client before the message is sent, so the sender can recognise its own
// message when the change notification arrives.
type Message struct {
	MessageID  string    `json:"id"`
	ThreadID   string    `json:"thread_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// ID returns the message identifier.
func (m Message) ID() string {
	return m.MessageID
}
