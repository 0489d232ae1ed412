// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-page-gate/internal/crypto"
	"github.com/MKhiriev/go-page-gate/internal/mock"
	"github.com/MKhiriev/go-page-gate/internal/service"
	"github.com/MKhiriev/go-page-gate/models"
)

func newTestPrompt(t *testing.T) (promptModel, *mock.MockGateService) {
	t.Helper()

	gate := mock.NewMockGateService(gomock.NewController(t))
	info := models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123")
	return newPromptModel(context.Background(), gate, "Secret notes", info), gate
}

func typeText(m promptModel, text string) promptModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(promptModel)
}

func press(m promptModel, keyType tea.KeyType) (promptModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return next.(promptModel), cmd
}

func TestPrompt_SubmitUnlocks(t *testing.T) {
	m, gate := newTestPrompt(t)
	gate.EXPECT().Submit(gomock.Any(), "Open Sesame").Return(nil)
	gate.EXPECT().State().Return(service.Unlocked)

	m = typeText(m, "Open Sesame")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	assert.True(t, done.unlocked)

	next, cmd := m.Update(done)
	m = next.(promptModel)
	assert.True(t, m.unlocked)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPrompt_WrongKeyShowsAlert(t *testing.T) {
	m, gate := newTestPrompt(t)
	gate.EXPECT().Submit(gomock.Any(), "nope").Return(crypto.ErrDecrypt)

	m = typeText(m, "nope")
	m, cmd := press(m, tea.KeyEnter)
	done := cmd().(submitDoneMsg)
	assert.False(t, done.unlocked)

	next, _ := m.Update(alertMsg{message: service.MsgIncorrectKey})
	m = next.(promptModel)
	next, cmd = m.Update(done)
	m = next.(promptModel)

	assert.Nil(t, cmd)
	assert.False(t, m.unlocked)
	assert.NoError(t, m.err)
	assert.Empty(t, m.input.Value())
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), service.MsgIncorrectKey)

	// typing is ignored until the alert is dismissed
	m = typeText(m, "x")
	assert.Empty(t, m.input.Value())

	m, _ = press(m, tea.KeyEsc)
	assert.Nil(t, m.overlay)
	assert.False(t, m.quitByUser)
}

func TestPrompt_UnexpectedErrorQuits(t *testing.T) {
	m, _ := newTestPrompt(t)
	failure := errors.New("container vanished")

	next, cmd := m.Update(submitDoneMsg{err: failure})
	m = next.(promptModel)

	assert.ErrorIs(t, m.err, failure)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPrompt_EnterWhileSubmittingIsIgnored(t *testing.T) {
	m, _ := newTestPrompt(t)
	m.submitting = true

	_, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
}

func TestPrompt_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m, _ := newTestPrompt(t)

		m, cmd := press(m, k)
		assert.True(t, m.quitByUser)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestPrompt_ViewMasksInput(t *testing.T) {
	m, _ := newTestPrompt(t)
	m = typeText(m, "hunter2")

	view := m.View()
	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "Secret notes")
	assert.Contains(t, view, "v1.0.0")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "äöü...", fitText("äöüäöüäöü", 6))
}
