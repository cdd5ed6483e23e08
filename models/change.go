// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Row is an untyped database row keyed by column name. Rows cross the server
// boundary in this form and are turned into typed entities on the client.
type Row map[string]any

// ChangeType names the kind of change carried by a [ChangeEvent].
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"

	// ChangeResync is never produced by the server. The client emits it after
	// a dropped subscription has been re-established, since events may have
	// been missed in between.
	ChangeResync ChangeType = "RESYNC"
)

// ChangeEvent describes one row-level change of a collection.
// Record holds the new row for inserts and updates, OldRecord the removed row
// for deletes.
type ChangeEvent struct {
	Type            ChangeType `json:"type"`
	Collection      string     `json:"collection"`
	Record          Row        `json:"record,omitempty"`
	OldRecord       Row        `json:"old_record,omitempty"`
	CommitTimestamp time.Time  `json:"commit_timestamp"`
}

// Row returns the row a filter should be matched against.
func (e ChangeEvent) Row() Row {
	if e.Type == ChangeDelete {
		return e.OldRecord
	}
	return e.Record
}

// Unsubscribe releases a change subscription. Calling it more than once is
// allowed and has no further effect.
type Unsubscribe func()
