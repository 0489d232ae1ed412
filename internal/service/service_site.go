// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/page"
)

type siteService struct {
	site   fs.FS
	logger *logger.Logger
}

// NewSiteService creates a SiteService over the directory siteDir.
func NewSiteService(siteDir string, logger *logger.Logger) (SiteService, error) {
	info, err := os.Stat(siteDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSiteDirNotFound, siteDir)
	}

	return NewSiteServiceFS(os.DirFS(siteDir), logger), nil
}

// NewSiteServiceFS creates a SiteService over an arbitrary file system.
func NewSiteServiceFS(site fs.FS, logger *logger.Logger) SiteService {
	return &siteService{site: site, logger: logger}
}

func (s *siteService) LockedPages(ctx context.Context) ([]string, error) {
	var locked []string

	err := fs.WalkDir(s.site, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !isHTML(p) {
			return nil
		}

		f, err := s.site.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err = page.Parse(f); err != nil {
			if !errors.Is(err, page.ErrNoContainer) {
				s.logger.Warn().Err(err).Str("file", p).Msg("skipping unparsable page")
			}
			return nil
		}

		locked = append(locked, pagePath(p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk site: %w", err)
	}

	slices.Sort(locked)
	return locked, nil
}

func isHTML(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".html" || ext == ".htm"
}

// pagePath maps a file in the site to the URL path it is served under:
// "blog/secret/index.html" becomes "/blog/secret/".
func pagePath(p string) string {
	if path.Base(p) == "index.html" {
		dir := path.Dir(p)
		if dir == "." {
			return "/"
		}
		return "/" + dir + "/"
	}
	return "/" + p
}
