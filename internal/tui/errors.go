// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the prompt is closed before the page
	// was unlocked.
	ErrUserQuit = errors.New("user left the prompt")

	errPromptRunning = errors.New("prompt is already running")
)
