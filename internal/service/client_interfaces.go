// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-page-gate/internal/crypto"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// AccessKeyService finds the candidate key material for a page before any
// user interaction happens, and remembers material that unlocked a page.
type AccessKeyService interface {
	// StorageKey derives the store key for a page path. Pages sharing their
	// second path segment share a key. It is pure and never fails.
	StorageKey(path string) string

	// ResolvePassword returns stored material for the page if there is
	// any. Otherwise it normalizes the access phrase carried in the page
	// URL query, stores it before it has been validated, and returns it.
	// The bool is false when neither source yields a candidate.
	ResolvePassword(ctx context.Context, page *url.URL) (crypto.KeyMaterial, bool, error)

	// Remember stores material under the page's storage key.
	Remember(ctx context.Context, page *url.URL, material crypto.KeyMaterial) error
}

// GateService drives the locked container of one page load from Locked to
// Unlocked, prompting the user when no cached material works.
type GateService interface {
	// Open runs once the page is parsed. It tries the resolved candidate
	// silently and falls back to the prompt.
	Open(ctx context.Context) (State, error)

	// TryUnlock decrypts the container with material. On success the
	// material is remembered, the container shows the plaintext and the
	// gate is Unlocked. On failure nothing is changed.
	TryUnlock(ctx context.Context, material crypto.KeyMaterial) (string, error)

	// Submit handles a phrase typed into the prompt. Failures are reported
	// to the user through the [Alerter] and returned.
	Submit(ctx context.Context, input string) error

	// State reports the current gate state.
	State() State
}

// Container is the locked region of a page.
type Container interface {
	// Ciphertext returns the encrypted body, trimmed.
	Ciphertext() (string, error)

	// ShowUnlocked replaces the whole container with markup.
	ShowUnlocked(markup string) error

	// ShowPrompt reveals the prompt and the input form.
	ShowPrompt() error
}

// Banner is the optional warning shown when a page arrives without any
// access key.
type Banner interface {
	// ShowWarning reveals the banner. Pages without one return nil.
	ShowWarning() error
}

// Alerter presents a blocking message to the user.
type Alerter interface {
	Alert(message string)
}
