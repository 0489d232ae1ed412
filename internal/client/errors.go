// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrPageStillLocked = errors.New("page is still locked")
	ErrWriteOutput     = errors.New("failed to write unlocked page")
)
