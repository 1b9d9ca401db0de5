// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/digitcipher/internal/i18n"
)

// dialog is a modal message box with a single dismiss button. While one is
// open, the next key press only closes it.
type dialog struct {
	title   string
	message string
	isError bool
}

func newErrorDialog(message string) *dialog {
	return &dialog{title: i18n.T("dialog.error_title"), message: message, isError: true}
}

func newInfoDialog(message string) *dialog {
	return &dialog{title: i18n.T("dialog.info_title"), message: message}
}

func (d *dialog) View() string {
	box := dialogBoxStyle
	title := titleStyle.Padding(0).Render(d.title)
	if d.isError {
		box = errorDialogBoxStyle
		title = errorStyle.Bold(true).Render(d.title)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		d.message,
		activeButtonStyle.Render("OK"),
		helpStyle.Render(i18n.T("dialog.dismiss")),
	)
	return box.Render(body)
}
