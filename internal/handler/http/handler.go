// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/service"
)

type Handler struct {
	services *service.Services
	site     http.FileSystem

	logger *logger.Logger
}

// NewHandler creates a Handler serving files from siteDir.
func NewHandler(services *service.Services, siteDir string, logger *logger.Logger) *Handler {
	logger.Info().Str("site_dir", siteDir).Msg("http handler created")
	return &Handler{
		services: services,
		site:     http.Dir(siteDir),
		logger:   logger,
	}
}
