// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-page-gate/internal/service"
	"github.com/MKhiriev/go-page-gate/models"
)

// promptModel asks for the access key of one page and hands every
// submission to the gate.
type promptModel struct {
	ctx  context.Context
	gate service.GateService

	title     string
	buildInfo models.AppBuildInfo

	input      textinput.Model
	submitting bool
	overlay    *errorOverlayModel

	unlocked   bool
	quitByUser bool
	err        error
}

func newPromptModel(ctx context.Context, gate service.GateService, title string, info models.AppBuildInfo) promptModel {
	input := textinput.New()
	input.Placeholder = "access key"
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return promptModel{
		ctx:       ctx,
		gate:      gate,
		title:     title,
		buildInfo: info,
		input:     input,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alertMsg:
		m.overlay = &errorOverlayModel{message: msg.message}
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if msg.unlocked {
			m.unlocked = true
			return m, tea.Quit
		}
		if msg.err != nil && !service.IsUnlockFailure(msg.err) {
			m.err = msg.err
			return m, tea.Quit
		}
		m.input.Reset()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}

		if m.overlay != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdSubmit(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString("This page is locked. Enter the access key to read it.\n\n")
	b.WriteString("Key │ ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.submitting {
		b.WriteString("\n" + helpStyle.Render("checking..."))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.buildInfo.String()))

	page := renderPage(fitText(m.title, 60), b.String(), "enter: unlock │ esc: leave")
	if m.overlay != nil {
		return page + "\n" + m.overlay.View()
	}
	return page
}

func (m promptModel) cmdSubmit(input string) tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		err := gate.Submit(ctx, input)
		return submitDoneMsg{
			err:      err,
			unlocked: err == nil && gate.State() == service.Unlocked,
		}
	}
}
