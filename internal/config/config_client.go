// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the access key protocol settings.
type ClientApp struct {
	Namespace  string
	QueryParam string
}

// ClientAdapter holds page fetching settings.
type ClientAdapter struct {
	RequestTimeout time.Duration
	UserAgent      string
}

// ClientStorage holds the key store DSN.
type ClientStorage struct {
	DSN string
}

// ClientOutput describes where the rendered page goes.
type ClientOutput struct {
	// Path is the output file; empty or "-" means stdout.
	Path string
	// Clipboard copies the unlocked content markup to the clipboard.
	Clipboard bool
}

// ClientConfig is the validated configuration of the client binary.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Output  ClientOutput
	LogPath string
	PageURL string
}

// GetClientConfig builds and validates the client view of the merged
// configuration. args are the command-line args without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Namespace:  cfg.App.Namespace,
			QueryParam: cfg.App.QueryParam,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DSN,
		},
		Output: ClientOutput{
			Path:      cfg.Client.OutputPath,
			Clipboard: cfg.Client.Clipboard,
		},
		LogPath: cfg.Client.LogPath,
		PageURL: cfg.Client.PageURL,
	}
}
