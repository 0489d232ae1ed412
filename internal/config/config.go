// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the client and the
// static site server.
type StructuredConfig struct {
	// App holds the access key protocol settings.
	App App `envPrefix:"APP_"`

	// Storage selects the key store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the static site server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the page fetching settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds client-only output settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the settings that shape storage keys and the URL parameter
// carrying an access phrase.
type App struct {
	// Namespace is the first component of every storage key.
	// Env: APP_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// QueryParam is the page URL query parameter read as a candidate
	// password.
	// Env: APP_QUERY_PARAM
	QueryParam string `env:"QUERY_PARAM"`

	// Version overrides the version reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the key store DSN. See store.Open for the accepted forms.
type Storage struct {
	// DSN names the backend and its location
	// (e.g. "keys.json", "sqlite://keys.db", "redis://localhost:6379/0").
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds network and site settings of the static site server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SiteDir is the directory with the generated site, encrypted pages
	// included.
	// Env: SERVER_SITE_DIR
	SiteDir string `env:"SITE_DIR"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound HTTP settings for fetching pages.
type Adapter struct {
	// RequestTimeout bounds a single page fetch.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every page request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Client holds what the client does with an unlocked page.
type Client struct {
	// PageURL is the page to open. Usually given as the first positional
	// argument.
	// Env: CLIENT_PAGE_URL
	PageURL string `env:"PAGE_URL"`

	// OutputPath is where the rendered page is written; empty or "-" means
	// stdout.
	// Env: CLIENT_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// Clipboard copies the unlocked content markup to the system clipboard.
	// Env: CLIENT_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`

	// LogPath is the client log file.
	// Env: CLIENT_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// GetStructuredConfig loads and merges the configuration from the
// environment, the command-line args (without the program name) and the
// JSON file they point to, then fills in defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
