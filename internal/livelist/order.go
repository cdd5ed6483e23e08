// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-pickup/models"
)

// Arrange returns a new slice with duplicates removed (first occurrence
// wins) and the privileged entity first, the acting user second and
// everybody else in their original order.
func Arrange[E Entity](items []E, privilegedID, actingUserID string) []E {
	out := Dedupe(items)

	rank := func(e E) int {
		switch {
		case privilegedID != "" && e.ID() == privilegedID:
			return 0
		case actingUserID != "" && e.ID() == actingUserID:
			return 1
		default:
			return 2
		}
	}

	slices.SortStableFunc(out, func(a, b E) int {
		return cmp.Compare(rank(a), rank(b))
	})

	return out
}

// Dedupe returns a copy of items keeping the first entity of every id.
func Dedupe[E Entity](items []E) []E {
	seen := make(map[string]struct{}, len(items))
	out := make([]E, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item.ID()]; ok {
			continue
		}
		seen[item.ID()] = struct{}{}
		out = append(out, item)
	}

	return out
}

// Chronological orders messages by creation time, then by id.
func Chronological(messages []models.Message) []models.Message {
	out := Dedupe(messages)

	slices.SortStableFunc(out, func(a, b models.Message) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.MessageID, b.MessageID)
	})

	return out
}

func contains[E Entity](items []E, id string) bool {
	return slices.ContainsFunc(items, func(e E) bool {
		return e.ID() == id
	})
}
