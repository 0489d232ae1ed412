// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidPageURL = errors.New("invalid page url")
	ErrPageNotFetched = errors.New("page could not be fetched")

	ErrNotFound            = errors.New("page not found")
	ErrForbidden           = errors.New("access to page forbidden")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
