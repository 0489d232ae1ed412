// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the validated configuration of the static site server.
type ServerConfig struct {
	HTTPAddress    string
	SiteDir        string
	RequestTimeout time.Duration
	Version        string
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		SiteDir:        cfg.Server.SiteDir,
		RequestTimeout: cfg.Server.RequestTimeout,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
