// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pickup/internal/validators"
	"github.com/MKhiriev/go-pickup/models"
	sq "github.com/Masterminds/squirrel"
)

// insertedColumn reports whether an upsert inserted (true) or updated the
// row. xmax is zero for tuples created by the current statement.
const insertedColumn = "inserted"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returning(schema models.Schema, extra ...string) string {
	return "RETURNING " + strings.Join(append(schema.ColumnNames(), extra...), ", ")
}

func buildSelectQuery(schema models.Schema, query models.Query) (string, []any, error) {
	where, err := buildWhere(schema, query.Filters)
	if err != nil {
		return "", nil, err
	}

	orders := query.Order
	if len(orders) == 0 && schema.Order != "" {
		if orders, err = models.ParseOrder(schema.Order); err != nil {
			return "", nil, fmt.Errorf("%w: default order of %s: %w", ErrBuildingSQLQuery, schema.Collection, err)
		}
	}

	b := psql.Select(schema.ColumnNames()...).From(schema.Table).Where(where)
	for _, o := range orders {
		if _, ok := schema.Column(o.Column); !ok {
			return "", nil, fmt.Errorf("%w: %w: %s", ErrBuildingSQLQuery, validators.ErrUnknownColumn, o.Column)
		}
		if o.Desc {
			b = b.OrderBy(o.Column + " DESC")
		} else {
			b = b.OrderBy(o.Column + " ASC")
		}
	}
	if query.Limit > 0 {
		b = b.Limit(uint64(query.Limit))
	}

	return b.ToSql()
}

func buildInsertQuery(schema models.Schema, row models.Row, upsert bool) (string, []any, error) {
	if len(row) == 0 {
		return "", nil, fmt.Errorf("%w: empty row", ErrBuildingSQLQuery)
	}

	columns := make([]string, 0, len(row))
	for column := range row {
		if _, ok := schema.Column(column); !ok {
			return "", nil, fmt.Errorf("%w: %w: %s", ErrBuildingSQLQuery, validators.ErrUnknownColumn, column)
		}
		columns = append(columns, column)
	}
	slices.Sort(columns)

	values := make([]any, 0, len(columns))
	for _, column := range columns {
		values = append(values, row[column])
	}

	b := psql.Insert(schema.Table).Columns(columns...).Values(values...)
	if upsert {
		b = b.Suffix(onConflict(schema, columns))
	}
	b = b.Suffix(returning(schema, "(xmax = 0) AS "+insertedColumn))

	return b.ToSql()
}

// onConflict merges every supplied non-key column into the existing row.
// When only key columns are supplied the key is rewritten to itself so that
// RETURNING still yields the row. A row owned by someone else is left
// untouched and RETURNING yields nothing.
func onConflict(schema models.Schema, columns []string) string {
	var set []string
	for _, column := range columns {
		if !slices.Contains(schema.Key, column) {
			set = append(set, column+" = EXCLUDED."+column)
		}
	}
	if len(set) == 0 {
		set = append(set, schema.Key[0]+" = EXCLUDED."+schema.Key[0])
	}

	clause := "ON CONFLICT (" + strings.Join(schema.Key, ", ") + ") DO UPDATE SET " + strings.Join(set, ", ")
	if schema.OwnerColumn != "" {
		clause += " WHERE " + schema.Table + "." + schema.OwnerColumn + " = EXCLUDED." + schema.OwnerColumn
	}

	return clause
}

func buildDeleteQuery(schema models.Schema, query models.Query) (string, []any, error) {
	where, err := buildWhere(schema, query.Filters)
	if err != nil {
		return "", nil, err
	}

	return psql.Delete(schema.Table).Where(where).Suffix(returning(schema)).ToSql()
}

func buildWhere(schema models.Schema, filters []models.Filter) (sq.And, error) {
	where := sq.And{}
	for _, f := range filters {
		value, err := validators.FilterValue(schema, f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		switch f.Operator {
		case models.OpEq, models.OpIn:
			where = append(where, sq.Eq{f.Column: value})
		case models.OpNeq:
			where = append(where, sq.NotEq{f.Column: value})
		case models.OpGt:
			where = append(where, sq.Gt{f.Column: value})
		case models.OpGte:
			where = append(where, sq.GtOrEq{f.Column: value})
		case models.OpLt:
			where = append(where, sq.Lt{f.Column: value})
		case models.OpLte:
			where = append(where, sq.LtOrEq{f.Column: value})
		case models.OpILike:
			where = append(where, sq.ILike{f.Column: value})
		default:
			return nil, fmt.Errorf("%w: %w: %s", ErrBuildingSQLQuery, models.ErrInvalidFilter, f.Operator)
		}
	}

	return where, nil
}
