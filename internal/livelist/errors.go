// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package livelist

import "errors"

var (
	// ErrNotBound is returned by operations that need a parent key before
	// Bind was called, or after Close.
	ErrNotBound = errors.New("live list is not bound to a parent key")

	// ErrEmptyParentKey is returned by Bind for an empty key.
	ErrEmptyParentKey = errors.New("empty parent key")

	// ErrEmptyMessage is returned by Send for a blank body.
	ErrEmptyMessage = errors.New("empty message")
)
