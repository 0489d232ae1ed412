// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get its full request API.
//
//	client := utils.NewHTTPClient(15*time.Second, "go-page-gate")
//	resp, err := client.R().SetContext(ctx).Get("https://example.com/secret/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that follows redirects,
// gives up after timeout and identifies itself with userAgent when set.
// Every request carries a fresh X-Trace-ID header.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) == "" {
			r.SetHeader(TraceIDHeader, NewTraceID())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}

// TraceIDHeader is the header carrying the request trace identifier.
const TraceIDHeader = "X-Trace-ID"
