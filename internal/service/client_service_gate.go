// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-page-gate/internal/crypto"
	"github.com/MKhiriev/go-page-gate/internal/logger"
)

type gateService struct {
	container  Container
	banner     Banner
	page       *url.URL
	accessKeys AccessKeyService
	cipher     crypto.PageCipher
	alerter    Alerter
	logger     *logger.Logger

	mu     sync.Mutex
	state  State
	opened bool
}

// NewGateService creates the gate for one page load. banner may be nil when
// the page has no warning banner.
func NewGateService(
	container Container,
	banner Banner,
	page *url.URL,
	accessKeys AccessKeyService,
	cipher crypto.PageCipher,
	alerter Alerter,
	log *logger.Logger,
) GateService {
	return &gateService{
		container:  container,
		banner:     banner,
		page:       page,
		accessKeys: accessKeys,
		cipher:     cipher,
		alerter:    alerter,
		logger:     log.WithPage(page.Path, accessKeys.StorageKey(page.Path)),
		state:      Locked,
	}
}

// Open implements GateService.
func (g *gateService) Open(ctx context.Context) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.opened {
		return g.state, ErrGateOpened
	}
	g.opened = true

	material, ok, err := g.accessKeys.ResolvePassword(ctx, g.page)
	if err != nil {
		g.logger.Warn().Err(err).Msg("failed to read stored access key, treating it as absent")
		ok = false
	}

	if !ok {
		if g.banner != nil {
			if err = g.banner.ShowWarning(); err != nil {
				g.logger.Warn().Err(err).Msg("failed to show access key warning")
			}
		}
		return g.prompt()
	}

	if _, err = g.tryUnlock(ctx, material); err != nil {
		if !IsUnlockFailure(err) {
			return g.state, err
		}
		g.logger.Debug().Err(err).Msg("automatic unlock failed")
		return g.prompt()
	}

	g.logger.Info().Msg("page unlocked with resolved access key")
	return g.state, nil
}

func (g *gateService) prompt() (State, error) {
	if err := g.container.ShowPrompt(); err != nil {
		return g.state, fmt.Errorf("show prompt: %w", err)
	}
	g.state = Prompting
	return g.state, nil
}

// TryUnlock implements GateService.
func (g *gateService) TryUnlock(ctx context.Context, material crypto.KeyMaterial) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.tryUnlock(ctx, material)
}

func (g *gateService) tryUnlock(ctx context.Context, material crypto.KeyMaterial) (string, error) {
	if g.state == Unlocked {
		return "", ErrAlreadyUnlocked
	}

	ciphertext, err := g.container.Ciphertext()
	if err != nil {
		return "", fmt.Errorf("read ciphertext: %w", err)
	}

	plaintext, err := g.cipher.Unlock(ciphertext, material)
	if err != nil {
		return "", err
	}

	if err = g.accessKeys.Remember(ctx, g.page, material); err != nil {
		g.logger.Warn().Err(err).Msg("failed to remember access key")
	}

	if err = g.container.ShowUnlocked(plaintext); err != nil {
		return "", fmt.Errorf("replace container: %w", err)
	}
	g.state = Unlocked

	return plaintext, nil
}

// Submit implements GateService.
func (g *gateService) Submit(ctx context.Context, input string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != Prompting {
		return ErrNotPrompting
	}

	_, err := g.tryUnlock(ctx, g.cipher.Normalize(input))
	switch {
	case err == nil:
		g.logger.Info().Msg("page unlocked with typed access key")
	case errors.Is(err, crypto.ErrSentinelMissing):
		g.alerter.Alert(MsgIncorrectPlaintext)
	case errors.Is(err, crypto.ErrDecrypt):
		g.alerter.Alert(MsgIncorrectKey)
	}

	return err
}

// State implements GateService.
func (g *gateService) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// IsUnlockFailure reports whether err means the key did not open the page.
func IsUnlockFailure(err error) bool {
	return errors.Is(err, crypto.ErrDecrypt) || errors.Is(err, crypto.ErrSentinelMissing)
}
