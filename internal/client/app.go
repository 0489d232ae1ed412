// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-page-gate/internal/adapter"
	"github.com/MKhiriev/go-page-gate/internal/config"
	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/page"
	"github.com/MKhiriev/go-page-gate/internal/service"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

type App struct {
	pages    adapter.PageAdapter
	services *service.ClientServices
	ui       UI
	output   config.ClientOutput

	stdout      io.Writer
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(pages adapter.PageAdapter, services *service.ClientServices, ui UI, output config.ClientOutput, logger *logger.Logger) *App {
	return &App{
		pages:       pages,
		services:    services,
		ui:          ui,
		output:      output,
		stdout:      os.Stdout,
		copyToClipboard: clipboard.WriteAll,
		logger:      logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, rawURL string) error {
	fetched, err := a.pages.FetchPage(ctx, rawURL)
	if err != nil {
		return err
	}

	doc, err := page.Parse(bytes.NewReader(fetched.Body))
	if err != nil {
		return fmt.Errorf("%s: %w", fetched.URL.Host+fetched.URL.Path, err)
	}

	gate := a.services.NewGate(doc, doc, fetched.URL, a.ui)

	state, err := gate.Open(ctx)
	if err != nil {
		return fmt.Errorf("open gate: %w", err)
	}

	if state == service.Prompting {
		title := doc.Title()
		if title == "" {
			title = fetched.URL.Host + fetched.URL.Path
		}
		if err = a.ui.Prompt(ctx, gate, title); err != nil {
			return err
		}
	}

	if gate.State() != service.Unlocked {
		return ErrPageStillLocked
	}

	if err = a.writeOutput(doc); err != nil {
		return err
	}

	if a.output.Clipboard {
		a.copyContainer(doc)
	}

	return nil
}

func (a *App) writeOutput(doc *page.Document) error {
	if a.output.Path == "" || a.output.Path == stdoutPath {
		if err := doc.Render(a.stdout); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	f, err := os.OpenFile(a.output.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	if err = doc.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	a.logger.Info().Str("path", a.output.Path).Msg("unlocked page written")
	return nil
}

// copyContainer puts the unlocked markup on the clipboard. A missing
// clipboard is not fatal: the page has already been written.
func (a *App) copyContainer(doc *page.Document) {
	markup, err := doc.ContainerHTML()
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to render unlocked content")
		return
	}

	if err = a.copyToClipboard(markup); err != nil {
		a.logger.Warn().Err(err).Msg("failed to copy unlocked content to clipboard")
		return
	}

	a.logger.Debug().Int("size", len(markup)).Msg("unlocked content copied to clipboard")
}
