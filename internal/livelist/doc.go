// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package livelist keeps a locally displayed, ordered, duplicate-free list
// consistent with a remote collection that other clients change
// concurrently.
//
// A list is bound to one parent key at a time (a game, a community, a
// thread). Binding acquires a change subscription for that key and loads a
// first snapshot; every change notification triggers a full refresh, and the
// refreshed snapshot replaces the previous one wholesale. A failed refresh
// keeps the previous snapshot. Rebinding or closing releases the
// subscription exactly once, and refreshes that complete afterwards are
// discarded.
//
// [Roster] adds optimistic join and leave for the acting user and orders the
// privileged entity (host, creator) first and the acting user second.
// [Thread] is the chat variant: it appends sent and inserted messages
// locally, deduplicated by id, and refreshes on any other change.
package livelist
