// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import (
	"context"

	"github.com/MKhiriev/go-pickup/models"
)

// Entity is anything with a stable string id.
type Entity interface {
	ID() string
}

// Event is a typed change notification. Record is set for inserts and
// updates whose row passed validation, and nil otherwise.
type Event[E Entity] struct {
	Type   models.ChangeType
	Record *E
}

// Source is a remote collection partitioned by parent key.
type Source[E Entity] interface {
	// List fetches every entity under parentKey in remote order.
	List(ctx context.Context, parentKey string) ([]E, error)

	// Subscribe delivers change notifications for parentKey until the
	// returned function is called. The callback runs on the subscription's
	// own goroutine.
	Subscribe(ctx context.Context, parentKey string, onEvent func(Event[E])) (models.Unsubscribe, error)
}

// Membership is a roster source that also knows the privileged entity of
// the parent row and lets the acting user join and leave.
type Membership[E Entity] interface {
	Source[E]

	// PrivilegedID returns the id of the parent's privileged entity.
	PrivilegedID(ctx context.Context, parentKey string) (string, error)

	// Join inserts the acting user under parentKey.
	Join(ctx context.Context, parentKey, actingUserID string) error

	// Leave deletes the acting user's row under parentKey.
	Leave(ctx context.Context, parentKey, actingUserID string) error
}

// MessageSource is the source of a chat thread.
type MessageSource interface {
	Source[models.Message]

	// Send inserts msg and returns the stored row.
	Send(ctx context.Context, msg models.Message) (models.Message, error)
}

// Focuser is implemented by every live list. Background workers use it to
// refresh lists that may have missed notifications.
type Focuser interface {
	Focus(ctx context.Context) error
}
