// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-page-gate/internal/logger"
	"github.com/MKhiriev/go-page-gate/internal/service"
	"github.com/MKhiriev/go-page-gate/models"
)

// TUI runs the access-key prompt. It is also the [service.Alerter] of the
// gate it prompts for: alerts are delivered to the running program.
type TUI struct {
	buildInfo models.AppBuildInfo
	opts      []tea.ProgramOption
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
	pending []string
}

// New creates a TUI. opts are passed to every [tea.Program] it starts,
// which lets callers redirect input and output.
func New(info models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{buildInfo: info, opts: opts, logger: logger}
}

// Prompt shows the prompt for gate until the page is unlocked. It
// returns [ErrUserQuit] when the user leaves first.
func (t *TUI) Prompt(ctx context.Context, gate service.GateService, title string) error {
	model := newPromptModel(ctx, gate, title, t.buildInfo)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	program := tea.NewProgram(model, opts...)

	t.mu.Lock()
	if t.program != nil {
		t.mu.Unlock()
		return errPromptRunning
	}
	t.program = program
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	for _, message := range pending {
		go program.Send(alertMsg{message: message})
	}

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run prompt: %w", err)
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	switch {
	case result.unlocked:
		return nil
	case result.err != nil:
		return result.err
	default:
		return ErrUserQuit
	}
}

// Alert implements [service.Alerter]. Messages raised while no prompt is
// running are shown when the next one starts.
func (t *TUI) Alert(message string) {
	t.logger.Debug().Str("alert", message).Msg("alerting user")

	t.mu.Lock()
	program := t.program
	if program == nil {
		t.pending = append(t.pending, message)
	}
	t.mu.Unlock()

	if program != nil {
		program.Send(alertMsg{message: message})
	}
}
