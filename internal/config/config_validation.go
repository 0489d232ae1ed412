// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if strings.Contains(cfg.App.Namespace, ":") {
		return fmt.Errorf("%w: namespace %q must not contain ':'", ErrInvalidAppConfigs, cfg.App.Namespace)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.PageURL == "" {
		return ErrMissingPageURL
	}

	if cfg.App.Namespace == "" || cfg.App.QueryParam == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.SiteDir == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
