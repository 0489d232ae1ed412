// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter fetches published pages over HTTP for the client.
//
// Transport failures and non-2xx responses are mapped to the sentinel
// errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/page_adapter_mock.go -package=mock

// PageAdapter retrieves the markup of a published page.
type PageAdapter interface {
	// FetchPage downloads the page at rawURL. Redirects are followed; the
	// returned page carries the final URL, which is what identifies the
	// page for access key lookups.
	FetchPage(ctx context.Context, rawURL string) (*FetchedPage, error)
}

// FetchedPage is a downloaded page.
type FetchedPage struct {
	URL  *url.URL
	Body []byte
}
