// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/service"
)

const lockedMarkup = `<html><body><div class="hugo-encryptor-container"><div class="hugo-encryptor-cipher-text">QUJD</div></div></body></html>`

func TestSiteService_LockedPages(t *testing.T) {
	site := fstest.MapFS{
		"index.html":                  {Data: []byte("<html><body>home</body></html>")},
		"blog/secret/index.html":      {Data: []byte(lockedMarkup)},
		"blog/secret/post/index.html": {Data: []byte(lockedMarkup)},
		"blog/public/index.html":      {Data: []byte("<p>hello</p>")},
		"notes/diary.htm":             {Data: []byte(lockedMarkup)},
		"css/site.css":                {Data: []byte(".hugo-encryptor-container{}")},
	}

	pages, err := service.NewSiteServiceFS(site, logger.Nop()).LockedPages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/blog/secret/", "/blog/secret/post/", "/notes/diary.htm"}, pages)
}

func TestSiteService_CancelledContext(t *testing.T) {
	site := fstest.MapFS{"blog/secret/index.html": {Data: []byte(lockedMarkup)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.NewSiteServiceFS(site, logger.Nop()).LockedPages(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSiteService_MissingDir(t *testing.T) {
	_, err := service.NewSiteService(filepath.Join(t.TempDir(), "nope"), logger.Nop())
	assert.ErrorIs(t, err, service.ErrSiteDirNotFound)
}

func TestNewServices(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(lockedMarkup), 0o600))

	svcs, err := service.NewServices(&config.ServerConfig{SiteDir: dir}, "1.0.0", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))

	pages, err := svcs.SiteService.LockedPages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/"}, pages)

	svcs, err = service.NewServices(&config.ServerConfig{SiteDir: dir, Version: "override"}, "1.0.0", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "override", svcs.AppInfoService.GetAppVersion(context.Background()))

	_, err = service.NewServices(&config.ServerConfig{SiteDir: dir}, "", logger.Nop())
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
