// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock

import "context"

// AppInfoService reports information about the running server.
type AppInfoService interface {
	// GetAppVersion returns the version string served by /api/version/.
	GetAppVersion(ctx context.Context) string
}

// SiteService inspects the static site the server delivers. The server
// never decrypts or withholds anything; it only knows which pages carry a
// locked container.
type SiteService interface {
	// LockedPages lists the URL paths of pages containing a locked
	// container, sorted.
	LockedPages(ctx context.Context) ([]string, error)
}
