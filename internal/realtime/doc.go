// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime fans out collection change events to subscribers.
//
// The [Broker] is in-process: the collection service publishes one
// [models.ChangeEvent] per affected row and every subscription on the same
// collection whose filter matches the row receives it. Each subscription owns
// a bounded buffer. When a subscriber falls behind, further events for it are
// dropped and counted; clients recover through their next full refresh.
package realtime
