// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistent store that caches access keys across page
// loads. Values never expire.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Storage is a [KeyValueStore] backed by a resource that must be released.
type Storage interface {
	KeyValueStore

	// Close releases connections or file handles held by the backend.
	Close() error
}

// ErrorClassificator decides whether a failed backend operation was
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
