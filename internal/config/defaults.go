// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after every other source.
const (
	DefaultNamespace      = "mdft"
	DefaultQueryParam     = "k"
	DefaultDSN            = "page-gate-keys.json"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultSiteDir        = "public"
	DefaultRequestTimeout = 15 * time.Second
	DefaultUserAgent      = "go-page-gate"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Namespace:  DefaultNamespace,
			QueryParam: DefaultQueryParam,
		},
		Storage: Storage{
			DSN: DefaultDSN,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			SiteDir:        DefaultSiteDir,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
	}
}
