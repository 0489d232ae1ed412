// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "errors"

var (
	ErrNoContainer  = errors.New("page has no locked container")
	ErrNoCiphertext = errors.New("locked container has no ciphertext")
	ErrParsePage    = errors.New("failed to parse page")
)
