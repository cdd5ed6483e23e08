// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup/models"
)

// CoerceRow checks that every column of row is declared by schema and
// converts its value to the column's Go type. With requireAll set, every
// required column must be present and non-null.
func CoerceRow(schema models.Schema, row models.Row, requireAll bool) (models.Row, error) {
	if len(row) == 0 {
		return nil, ErrEmptyBodyRow
	}

	out := make(models.Row, len(row))
	for name, value := range row {
		col, ok := schema.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, schema.Collection, name)
		}

		coerced, err := col.Type.Coerce(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
		}
		if col.Defaulted && isZero(coerced) {
			continue
		}
		out[name] = coerced
	}

	if requireAll {
		for _, col := range schema.Columns {
			if v, ok := out[col.Name]; col.Required && (!ok || v == nil) {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingColumn, schema.Collection, col.Name)
			}
		}
	}

	return out, nil
}

func isZero(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case time.Time:
		return value.IsZero()
	default:
		return false
	}
}

// ValidateQuery checks that every filter and order column is declared by
// schema and that filter values parse as the column's type.
func ValidateQuery(schema models.Schema, query models.Query) error {
	for _, f := range query.Filters {
		if _, err := FilterValue(schema, f); err != nil {
			return err
		}
	}

	for _, o := range query.Order {
		if _, ok := schema.Column(o.Column); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, schema.Collection, o.Column)
		}
	}

	return nil
}

// FilterValue returns the typed operand of f: a single value, or []any for
// the in operator.
func FilterValue(schema models.Schema, f models.Filter) (any, error) {
	col, ok := schema.Column(f.Column)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, schema.Collection, f.Column)
	}

	switch f.Operator {
	case models.OpIn:
		items := f.List()
		values := make([]any, 0, len(items))
		for _, item := range items {
			v, err := col.Type.Parse(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, f.Column, err)
			}
			values = append(values, v)
		}
		return values, nil
	case models.OpILike:
		if col.Type != models.TypeText {
			return nil, fmt.Errorf("%w: %s", ErrOperatorNotText, f.Column)
		}
		return f.Value, nil
	default:
		v, err := col.Type.Parse(f.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, f.Column, err)
		}
		return v, nil
	}
}
