// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-page-gate/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client is a runnable client application.
type Client interface {
	// Run unlocks the page at rawURL and blocks until its output is
	// written or the user gives up.
	Run(ctx context.Context, rawURL string) error
}

// UI asks the user for an access key. It also delivers the gate's alerts.
type UI interface {
	service.Alerter

	// Prompt blocks until gate is unlocked or the user quits.
	Prompt(ctx context.Context, gate service.GateService, title string) error
}
