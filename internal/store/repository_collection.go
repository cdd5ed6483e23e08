// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pickup/internal/logger"
	"github.com/MKhiriev/go-pickup/models"
	"github.com/jackc/pgerrcode"
)

// collectionRepository is the PostgreSQL implementation of
// [CollectionRepository].
type collectionRepository struct {
	*DB
	logger *logger.Logger
}

func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *collectionRepository) Select(ctx context.Context, schema models.Schema, query models.Query) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	statement, args, err := buildSelectQuery(schema, query)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Select").Str("collection", schema.Collection).Msg("failed to build query")
		return nil, err
	}

	var result []models.Row
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, statement, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result, err = scanRows(rows)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Select").Str("collection", schema.Collection).Msg("failed to select rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

func (r *collectionRepository) Insert(ctx context.Context, schema models.Schema, row models.Row, upsert bool) (models.Row, models.ChangeType, error) {
	log := logger.FromContext(ctx)

	statement, args, err := buildInsertQuery(schema, row, upsert)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Insert").Str("collection", schema.Collection).Msg("failed to build query")
		return nil, "", err
	}

	var stored []models.Row
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, statement, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		stored, err = scanRows(rows)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Insert").Str("collection", schema.Collection).Bool("upsert", upsert).Msg("failed to insert row")
		return nil, "", mapWriteError(err)
	}
	if len(stored) == 0 && upsert {
		log.Warn().Str("func", "*collectionRepository.Insert").Str("collection", schema.Collection).Msg("upsert skipped a row of another owner")
		return nil, "", ErrOwnerMismatch
	}
	if len(stored) == 0 {
		return nil, "", ErrNothingInserted
	}

	result := stored[0]
	changeType := models.ChangeUpdate
	if inserted, _ := result[insertedColumn].(bool); inserted {
		changeType = models.ChangeInsert
	}
	delete(result, insertedColumn)

	return result, changeType, nil
}

func (r *collectionRepository) Delete(ctx context.Context, schema models.Schema, query models.Query) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	statement, args, err := buildDeleteQuery(schema, query)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Delete").Str("collection", schema.Collection).Msg("failed to build query")
		return nil, err
	}

	var deleted []models.Row
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, statement, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		deleted, err = scanRows(rows)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.Delete").Str("collection", schema.Collection).Msg("failed to delete rows")
		return nil, mapWriteError(err)
	}

	return deleted, nil
}

func mapWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrParentNotFound, err)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// scanRows reads every row into a column-keyed map. Byte slices become
// strings.
func scanRows(rows *sql.Rows) ([]models.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		row := make(models.Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
