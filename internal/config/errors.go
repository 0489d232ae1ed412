// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the client and server config views.
var (
	// ErrInvalidAppConfigs indicates an empty namespace or query parameter
	// name, or a namespace containing the ":" key separator.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a non-positive page fetch timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or site
	// directory.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrMissingPageURL is returned by the client view when no page to open
	// was given.
	ErrMissingPageURL = errors.New("page url is required")
)
