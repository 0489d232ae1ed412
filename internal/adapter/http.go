// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/utils"
)

type httpPageAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPPageAdapter constructs a resty-backed [PageAdapter] using the
// configured timeout and user agent.
func NewHTTPPageAdapter(cfg config.ClientAdapter, logger *logger.Logger) PageAdapter {
	client := utils.NewHTTPClient(cfg.RequestTimeout, cfg.UserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")

	return &httpPageAdapter{client: client, logger: logger}
}

func normalizePageURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidPageURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPageURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: address must be http(s) and include a host", ErrInvalidPageURL)
	}

	return u, nil
}

// FetchPage implements [PageAdapter].
func (h *httpPageAdapter) FetchPage(ctx context.Context, rawURL string) (*FetchedPage, error) {
	pageURL, err := normalizePageURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(pageURL.String())
	if err != nil {
		h.logger.Err(err).Str("func", "httpPageAdapter.FetchPage").Str("url", loggableURL(pageURL)).Msg("page request failed")
		return nil, fmt.Errorf("%w: %w", ErrPageNotFetched, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("url", loggableURL(pageURL)).Int("status", resp.StatusCode()).Msg("page request rejected")
		return nil, err
	}

	finalURL := pageURL
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		finalURL = raw.Request.URL
	}

	h.logger.Debug().
		Str("url", finalURL.Path).
		Int("bytes", len(resp.Body())).
		Dur("took", resp.Time()).
		Msg("page fetched")

	return &FetchedPage{URL: finalURL, Body: resp.Body()}, nil
}

// loggableURL drops credentials and the query, which may carry an access
// phrase.
func loggableURL(u *url.URL) string {
	c := *u
	c.User = nil
	c.RawQuery = ""
	c.Fragment = ""
	return c.String()
}
