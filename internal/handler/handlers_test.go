// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/service"
)

func TestNewHandlers(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: "localhost:8080", SiteDir: t.TempDir()}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, &config.ServerConfig{}, logger.Nop())
	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
