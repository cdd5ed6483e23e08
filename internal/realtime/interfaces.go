// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"

	"github.com/MKhiriev/go-pickup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/realtime_mock.go -package=mock

// Publisher accepts change events produced by writes.
type Publisher interface {
	Publish(ctx context.Context, event models.ChangeEvent)
}

// Subscriber opens change subscriptions on a collection. A zero filter
// receives every event of the collection.
type Subscriber interface {
	Subscribe(collection string, filter models.Filter) *Subscription
}
