// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Operator is a PostgREST-style filter operator.
type Operator string

const (
	OpEq    Operator = "eq"
	OpNeq   Operator = "neq"
	OpIn    Operator = "in"
	OpGt    Operator = "gt"
	OpGte   Operator = "gte"
	OpLt    Operator = "lt"
	OpLte   Operator = "lte"
	OpILike Operator = "ilike"
)

var knownOperators = []Operator{OpEq, OpNeq, OpIn, OpGt, OpGte, OpLt, OpLte, OpILike}

const (
	paramOrder  = "order"
	paramLimit  = "limit"
	paramSelect = "select"
)

var (
	// ErrInvalidFilter is returned for filters that are not of the form
	// column=operator.value.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidOrder is returned for malformed order clauses.
	ErrInvalidOrder = errors.New("invalid order")
	// ErrInvalidLimit is returned for a non-positive or non-numeric limit.
	ErrInvalidLimit = errors.New("invalid limit")
)

// Filter restricts a query to rows whose Column matches Value under Operator.
type Filter struct {
	Column   string
	Operator Operator
	Value    string
}

// Eq builds a column=eq.value filter.
func Eq(column, value string) Filter {
	return Filter{Column: column, Operator: OpEq, Value: value}
}

// In builds a column=in.(a,b) filter.
func In(column string, values ...string) Filter {
	return Filter{Column: column, Operator: OpIn, Value: "(" + strings.Join(values, ",") + ")"}
}

// Compare builds a filter with an arbitrary operator.
func Compare(column string, op Operator, value string) Filter {
	return Filter{Column: column, Operator: op, Value: value}
}

// List returns the members of an in.(...) value.
func (f Filter) List() []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(f.Value, "("), ")")
	if inner == "" {
		return nil
	}

	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// String renders the filter as column=operator.value.
func (f Filter) String() string {
	return f.Column + "=" + string(f.Operator) + "." + f.Value
}

// Matches reports whether row satisfies an equality filter. Only eq filters
// can be evaluated in memory; every other operator never matches.
func (f Filter) Matches(row Row) bool {
	if f.Operator != OpEq {
		return false
	}
	v, ok := row[f.Column]
	if !ok {
		return false
	}
	return FormatValue(v) == f.Value
}

// ParseFilter parses column=operator.value.
func ParseFilter(raw string) (Filter, error) {
	column, expr, ok := strings.Cut(raw, "=")
	if !ok || column == "" {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return parseExpression(column, expr)
}

func parseExpression(column, expr string) (Filter, error) {
	op, value, ok := strings.Cut(expr, ".")
	if !ok || !slices.Contains(knownOperators, Operator(op)) {
		return Filter{}, fmt.Errorf("%w: %s=%s", ErrInvalidFilter, column, expr)
	}

	f := Filter{Column: column, Operator: Operator(op), Value: value}
	if f.Operator == OpIn && (!strings.HasPrefix(value, "(") || !strings.HasSuffix(value, ")")) {
		return Filter{}, fmt.Errorf("%w: in requires a parenthesised list", ErrInvalidFilter)
	}

	return f, nil
}

// Order sorts by Column, ascending unless Desc is set.
type Order struct {
	Column string
	Desc   bool
}

func (o Order) String() string {
	if o.Desc {
		return o.Column + ".desc"
	}
	return o.Column + ".asc"
}

// ParseOrder parses "a.asc,b.desc". A bare column sorts ascending.
func ParseOrder(raw string) ([]Order, error) {
	var orders []Order
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		column, dir, _ := strings.Cut(part, ".")
		switch dir {
		case "", "asc":
			orders = append(orders, Order{Column: column})
		case "desc":
			orders = append(orders, Order{Column: column, Desc: true})
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, part)
		}
	}
	return orders, nil
}

// Query is a read or delete request against a collection.
type Query struct {
	Filters []Filter
	Order   []Order
	Limit   int
}

// NewQuery starts a query with the given filters.
func NewQuery(filters ...Filter) Query {
	return Query{Filters: filters}
}

// Where appends filters.
func (q Query) Where(filters ...Filter) Query {
	q.Filters = append(slices.Clone(q.Filters), filters...)
	return q
}

// OrderBy appends an ordering clause.
func (q Query) OrderBy(column string, desc bool) Query {
	q.Order = append(slices.Clone(q.Order), Order{Column: column, Desc: desc})
	return q
}

// WithLimit caps the number of returned rows.
func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	return q
}

// Filter returns the first filter on column, if any.
func (q Query) Filter(column string) (Filter, bool) {
	for _, f := range q.Filters {
		if f.Column == column {
			return f, true
		}
	}
	return Filter{}, false
}

// Values encodes the query as URL parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	for _, f := range q.Filters {
		values.Add(f.Column, string(f.Operator)+"."+f.Value)
	}

	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			parts = append(parts, o.String())
		}
		values.Set(paramOrder, strings.Join(parts, ","))
	}

	if q.Limit > 0 {
		values.Set(paramLimit, strconv.Itoa(q.Limit))
	}

	return values
}

// ParseQuery decodes URL parameters produced by [Query.Values].
// Filters are returned sorted by column so the result is deterministic.
func ParseQuery(values url.Values) (Query, error) {
	var q Query

	columns := make([]string, 0, len(values))
	for key := range values {
		columns = append(columns, key)
	}
	slices.Sort(columns)

	for _, column := range columns {
		switch column {
		case paramSelect:
			continue
		case paramOrder:
			orders, err := ParseOrder(values.Get(paramOrder))
			if err != nil {
				return Query{}, err
			}
			q.Order = orders
		case paramLimit:
			limit, err := strconv.Atoi(values.Get(paramLimit))
			if err != nil || limit <= 0 {
				return Query{}, fmt.Errorf("%w: %q", ErrInvalidLimit, values.Get(paramLimit))
			}
			q.Limit = limit
		default:
			for _, expr := range values[column] {
				f, err := parseExpression(column, expr)
				if err != nil {
					return Query{}, err
				}
				q.Filters = append(q.Filters, f)
			}
		}
	}

	return q, nil
}
