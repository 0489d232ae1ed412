// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
)

// Services bundles the static site server services.
type Services struct {
	AppInfoService AppInfoService
	SiteService    SiteService
}

// NewServices builds the server services. version is used unless the
// configuration overrides it.
func NewServices(cfg *config.ServerConfig, version string, logger *logger.Logger) (*Services, error) {
	if cfg.Version != "" {
		version = cfg.Version
	}

	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	site, err := NewSiteService(cfg.SiteDir, logger)
	if err != nil {
		return nil, fmt.Errorf("site service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		SiteService:    site,
	}, nil
}
