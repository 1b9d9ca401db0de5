// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for digitcipher.
// This file contains the encode/decode form: a six character input, the
// conversion result and the copy-to-clipboard action.
package tui // import "github.com/toeirei/digitcipher/internal/tui"

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/digitcipher/internal/cipher"
	"github.com/toeirei/digitcipher/internal/core"
	"github.com/toeirei/digitcipher/internal/i18n"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// convertRequests numbers conversions across every form instance.
var convertRequests atomic.Uint64

// convertedMsg carries the outcome of a conversion started by the form.
// id matches the form's pending request; anything else is stale.
type convertedMsg struct {
	id   uint64
	conv core.Conversion
	err  error
}

type convertFormModel struct {
	dir     core.Direction
	conv    *core.Converter
	input   textinput.Model
	result  string
	status  string
	dialog  *dialog
	pending uint64
}

func newConvertFormModel(conv *core.Converter, dir core.Direction) *convertFormModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("form.placeholder")
	ti.Focus()
	ti.CharLimit = cipher.Length
	ti.Width = 12
	ti.Prompt = "> "
	ti.TextStyle = focusedStyle
	ti.Cursor.Style = focusedStyle

	return &convertFormModel{dir: dir, conv: conv, input: ti}
}

func (m *convertFormModel) Init() tea.Cmd { return textinput.Blink }

// msgPrefix selects the "encode." or "decode." message group.
func (m *convertFormModel) msgPrefix() string { return m.dir.String() + "." }

func (m *convertFormModel) convertCmd() tea.Cmd {
	m.pending = convertRequests.Add(1)
	id, conv, dir, raw := m.pending, m.conv, m.dir, m.input.Value()
	return func() tea.Msg {
		c, err := conv.Convert(context.Background(), dir, raw)
		return convertedMsg{id: id, conv: c, err: err}
	}
}

// errorMessage renders err for the error dialog.
func errorMessage(err error) string {
	var ve *cipher.ValidationError
	if errors.As(err, &ve) {
		return i18n.T(ve.Reason.MessageID())
	}
	return i18n.T("error.generic", err)
}

func (m *convertFormModel) Update(msg tea.Msg) (*convertFormModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case convertedMsg:
		if msg.id != m.pending {
			return m, nil
		}
		m.pending = 0
		if msg.err != nil {
			m.result = ""
			m.dialog = newErrorDialog(errorMessage(msg.err))
			return m, nil
		}
		m.result = msg.conv.Output
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.dialog != nil {
			m.dialog = nil
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "enter":
			m.status = ""
			return m, m.convertCmd()
		case "ctrl+y":
			if m.result == "" {
				return m, nil
			}
			if err := clipboardWrite(m.result); err != nil {
				m.dialog = newErrorDialog(i18n.T("form.copy_failed", err))
				return m, nil
			}
			m.status = i18n.T("form.copied")
			return m, nil
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *convertFormModel) View(width int) string {
	prefix := m.msgPrefix()
	title := mainTitleStyle.Render(i18n.T(prefix + "title"))

	var items []string
	items = append(items, i18n.T(prefix+"prompt"), "", m.input.View(), activeButtonStyle.Render(i18n.T(prefix+"button")), "")
	items = append(items, i18n.T(prefix+"result"))
	if m.result != "" {
		items = append(items, resultStyle.Render(m.result))
	} else {
		items = append(items, helpStyle.Render(i18n.T("form.no_result")))
	}
	if m.status != "" {
		items = append(items, "", statusMessageStyle.Render(m.status))
	}
	pane := paneStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	if m.dialog != nil {
		pane = lipgloss.JoinVertical(lipgloss.Left, pane, "", m.dialog.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, pane, "", renderFooter(i18n.T("form.help"), "", width))
}
