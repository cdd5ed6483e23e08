// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import "errors"

var (
	ErrUnknownFrame      = errors.New("unknown frame type")
	ErrUnsupportedFilter = errors.New("only column=eq.value filters can be subscribed to")
	ErrDuplicateRef      = errors.New("subscription ref already in use")
	ErrUnknownRef        = errors.New("unknown subscription ref")
	ErrMissingCollection = errors.New("collection is required")
)
