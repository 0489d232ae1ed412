// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// State is a phase of the decryption gate.
type State int

const (
	// Locked is the initial state before the page has been opened.
	Locked State = iota
	// Prompting means the prompt is visible and waiting for input.
	Prompting
	// Unlocked is terminal: the container holds the decrypted content.
	Unlocked
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Prompting:
		return "prompting"
	case Unlocked:
		return "unlocked"
	}
	return "unknown"
}
