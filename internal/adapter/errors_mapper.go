// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an error wrapping
// [ErrPageNotFetched] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrPageNotFetched, ErrNotFound)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrPageNotFetched, ErrForbidden)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w", ErrPageNotFetched, ErrBadGateway)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrPageNotFetched, ErrInternalServerError)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrPageNotFetched, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
}
