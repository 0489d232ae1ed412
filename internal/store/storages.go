// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
)

// Open picks a backend from cfg.DSN and returns it ready for use:
//   - "memory" or ":memory:"                    in-process map
//   - "redis://…", "rediss://…"                 Redis
//   - "postgres://…", "postgresql://…"          PostgreSQL (migrated)
//   - "sqlite://path", "*.db", "*.sqlite"       SQLite (migrated)
//   - "file://path", "*.json"                   JSON file
func Open(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (Storage, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	log.Info().Str("backend", backendName(dsn)).Msg("opening key store...")

	switch {
	case dsn == "memory" || dsn == ":memory:":
		return NewMemoryStore(), nil

	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return NewRedisStore(ctx, dsn)

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migrated(db, log)

	case strings.HasPrefix(dsn, "sqlite://"), hasAnySuffix(dsn, ".db", ".sqlite", ".sqlite3"):
		db, err := NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migrated(db, log)

	case strings.HasPrefix(dsn, "file://"), strings.HasSuffix(dsn, ".json"):
		return NewFileStore(strings.TrimPrefix(dsn, "file://"))
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func migrated(db *DB, log *logger.Logger) (Storage, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return NewAccessKeyRepository(db, log), nil
}

func backendName(dsn string) string {
	if i := strings.Index(dsn, "://"); i > 0 {
		return dsn[:i]
	}
	return dsn
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
