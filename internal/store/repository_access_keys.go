// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-page-gate/internal/logger"
)

const (
	accessKeysTable    = "access_keys"
	colStorageKey      = "storage_key"
	colKeyMaterial     = "key_material"
	colUpdatedAt       = "updated_at"
	upsertAccessKeySfx = "ON CONFLICT (storage_key) DO UPDATE SET key_material = excluded.key_material, updated_at = excluded.updated_at"
)

// accessKeyRepository stores access keys in the access_keys table of a SQL
// database.
type accessKeyRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAccessKeyRepository returns a SQL-backed [Storage]. The schema must
// already be migrated.
func NewAccessKeyRepository(db *DB, logger *logger.Logger) Storage {
	return &accessKeyRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *accessKeyRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select(colKeyMaterial).
		From(accessKeysTable).
		Where(sq.Eq{colStorageKey: key}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "accessKeyRepository.Get").
			Str("storage_key", key).
			Msg("failed to query access key")
		if classified := r.db.classify(err); classified != nil {
			return "", fmt.Errorf("%w: %w", classified, err)
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *accessKeyRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert(accessKeysTable).
		Columns(colStorageKey, colKeyMaterial, colUpdatedAt).
		Values(key, value, r.now().UTC()).
		Suffix(upsertAccessKeySfx).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "accessKeyRepository.Set").
			Str("storage_key", key).
			Msg("failed to upsert access key")
		if classified := r.db.classify(err); classified != nil {
			return fmt.Errorf("%w: %w", classified, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *accessKeyRepository) Close() error {
	return r.db.Close()
}
