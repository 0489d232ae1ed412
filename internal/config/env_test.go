// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAMESPACE":   "blog",
		"APP_QUERY_PARAM": "key",
		"APP_VERSION":     "1.2.3",

		"STORAGE_DSN": "redis://localhost:6379/0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_SITE_DIR":        "/srv/public",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"ADAPTER_USER_AGENT":      "agent/1.0",

		"CLIENT_PAGE_URL":  "http://localhost/blog/secret/",
		"CLIENT_OUTPUT":    "page.html",
		"CLIENT_CLIPBOARD": "true",
		"CLIENT_LOG_PATH":  "/tmp/client.log",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "blog", cfg.App.Namespace)
	assert.Equal(t, "key", cfg.App.QueryParam)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/srv/public", cfg.Server.SiteDir)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "agent/1.0", cfg.Adapter.UserAgent)

	assert.Equal(t, "http://localhost/blog/secret/", cfg.Client.PageURL)
	assert.Equal(t, "page.html", cfg.Client.OutputPath)
	assert.True(t, cfg.Client.Clipboard)
	assert.Equal(t, "/tmp/client.log", cfg.Client.LogPath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("CLIENT_CLIPBOARD", "maybe")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

// TestEnvBeatsFlags verifies the merge order of the full builder.
func TestEnvBeatsFlags(t *testing.T) {
	t.Setenv("APP_NAMESPACE", "from-env")

	cfg, err := GetStructuredConfig([]string{"-n", "from-flag", "-q", "pw"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.Namespace)
	assert.Equal(t, "pw", cfg.App.QueryParam)
}
