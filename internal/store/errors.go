// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the
	// requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedDSN is returned by [Open] when the DSN does not name a
	// known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")

	// ErrStoreUnavailable wraps transient backend failures (lost
	// connection, busy database) so callers can tell them from bad data.
	ErrStoreUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
