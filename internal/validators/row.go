// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pickup/models"
)

// DecodeRow converts an untyped row into T and validates it. Every failure
// wraps [ErrMalformedRow].
func DecodeRow[T any](ctx context.Context, v Validator, row models.Row, fields ...string) (T, error) {
	var out T

	raw, err := json.Marshal(row)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	if err = v.Validate(ctx, out, fields...); err != nil {
		return out, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	return out, nil
}

// DecodeRows decodes every row. A single malformed row fails the whole
// batch.
func DecodeRows[T any](ctx context.Context, v Validator, rows []models.Row, fields ...string) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		item, err := DecodeRow[T](ctx, v, row, fields...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, item)
	}

	return out, nil
}

// EncodeRow converts an entity into an untyped row using its JSON tags.
func EncodeRow(v any) (models.Row, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}

	var row models.Row
	if err = json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}

	return row, nil
}
