// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values crossing a trust boundary: rows decoded
// from the wire on the client, and request bodies and queries on the server.
//
// [Validator] checks typed entities, optionally restricted to named fields.
// [DecodeRow] turns an untyped row into a validated entity. [CoerceRow] and
// [ValidateQuery] check untyped input against a collection schema.
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
