// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/digitcipher/internal/i18n"
)

type menuItem struct {
	label string
	ev    navEvent
	quit  bool
}

// homeModel is the landing view: title, description and navigation menu.
type homeModel struct {
	items  []menuItem
	cursor int
}

func newHomeModel() homeModel {
	return homeModel{
		items: []menuItem{
			{label: i18n.T("menu.encode"), ev: navEncode},
			{label: i18n.T("menu.decode"), ev: navDecode},
			{label: i18n.T("menu.history"), ev: navHistory},
			{label: i18n.T("menu.language"), ev: navLanguage},
			{label: i18n.T("menu.quit"), quit: true},
		},
	}
}

// Update returns the navigation event chosen by the user, if any.
func (m homeModel) Update(msg tea.Msg) (homeModel, navEvent, bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, 0, false, nil
	}
	switch key.String() {
	case "q":
		return m, 0, false, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "e":
		return m, navEncode, true, nil
	case "d":
		return m, navDecode, true, nil
	case "h":
		return m, navHistory, true, nil
	case "L":
		return m, navLanguage, true, nil
	case "enter":
		item := m.items[m.cursor]
		if item.quit {
			return m, 0, false, tea.Quit
		}
		return m, item.ev, true, nil
	}
	return m, 0, false, nil
}

func (m homeModel) View(width int) string {
	title := mainTitleStyle.Render("🔢 " + i18n.T("app.title"))
	subTitle := helpStyle.Render(i18n.T("app.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	items := []string{lipgloss.NewStyle().Bold(true).Render(i18n.T("menu.navigation")), ""}
	for i, it := range m.items {
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+it.label))
		} else {
			items = append(items, itemStyle.Render("  "+it.label))
		}
	}
	menuPane := paneStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	about := lipgloss.JoinVertical(lipgloss.Left,
		i18n.T("app.description"),
		"",
		helpStyle.Render(i18n.T("app.notice")),
	)
	aboutPane := paneStyle.Width(44).MarginLeft(2).Render(about)

	main := lipgloss.JoinHorizontal(lipgloss.Top, menuPane, aboutPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", main, "", renderFooter(i18n.T("home.footer"), "", width))
}
