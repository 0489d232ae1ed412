// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command page-gate fetches an encrypted page, unlocks it with a
// remembered key, the key in its URL or one typed at the prompt, and
// writes the unlocked page to standard output.
//
//	page-gate [flags] https://example.com/blog/secret/?k=hunter2
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-page-gate/internal/adapter"
	"github.com/MKhiriev/go-page-gate/internal/client"
	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/service"
	"github.com/MKhiriev/go-page-gate/internal/store"
	"github.com/MKhiriev/go-page-gate/internal/tui"
	"github.com/MKhiriev/go-page-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "page-gate: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("page-gate", cfg.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	keys, err := store.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create key storage")
		fmt.Fprintf(os.Stderr, "page-gate: %v\n", err)
		return 1
	}
	defer keys.Close()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(info, log, tea.WithOutput(os.Stderr), tea.WithAltScreen())

	app := client.NewApp(
		adapter.NewHTTPPageAdapter(cfg.Adapter, log),
		service.NewClientServices(keys, cfg.App, log),
		ui,
		cfg.Output,
		log,
	)

	if err = app.Run(ctx, cfg.PageURL); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return 130
		}
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "page-gate: %v\n", err)
		return 1
	}

	return 0
}
