// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ColumnType is the storage type of a collection column.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeTime
)

var errUnsupportedValue = errors.New("unsupported value")

// Column declares a single collection column.
type Column struct {
	Name     string
	Type     ColumnType
	Required bool
	// Defaulted columns are filled by the database when omitted. A null or
	// zero value for them is treated as omitted.
	Defaulted bool
}

// Schema declares a collection: the table it lives in, its columns and the
// rules the server enforces on it.
type Schema struct {
	Collection string
	Table      string
	Columns    []Column
	// Key is the conflict target used for upserts.
	Key []string
	// OwnerColumn must equal the caller's user id on insert and must be
	// pinned to it by the filters of a delete.
	OwnerColumn string
	// Order is the default ordering, e.g. "joined_at.asc".
	Order string
}

// Column looks up a column by name.
func (s Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames lists all column names in declaration order.
func (s Schema) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Parse converts a textual filter value into the column's Go type.
func (t ColumnType) Parse(raw string) (any, error) {
	switch t {
	case TypeInt:
		return strconv.ParseInt(raw, 10, 64)
	case TypeFloat:
		return strconv.ParseFloat(raw, 64)
	case TypeBool:
		return strconv.ParseBool(raw)
	case TypeTime:
		return time.Parse(time.RFC3339Nano, raw)
	default:
		return raw, nil
	}
}

// Coerce converts a JSON-decoded value into the column's Go type.
func (t ColumnType) Coerce(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch value := v.(type) {
	case string:
		if t == TypeText {
			return value, nil
		}
		return t.Parse(value)
	case json.Number:
		return t.Parse(value.String())
	case float64:
		switch t {
		case TypeInt:
			if value != math.Trunc(value) {
				return nil, fmt.Errorf("%w: %v is not an integer", errUnsupportedValue, value)
			}
			return int64(value), nil
		case TypeFloat:
			return value, nil
		case TypeText:
			return strconv.FormatFloat(value, 'f', -1, 64), nil
		}
	case int:
		return t.Coerce(float64(value))
	case int64:
		return t.Coerce(float64(value))
	case bool:
		if t == TypeBool {
			return value, nil
		}
	case time.Time:
		if t == TypeTime {
			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: %T", errUnsupportedValue, v)
}

// FormatValue renders a row value the way it appears in a filter, so that
// row values and filter values compare as strings.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case time.Time:
		return value.UTC().Format(time.RFC3339Nano)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}
