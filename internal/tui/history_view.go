// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/digitcipher/internal/core"
	"github.com/toeirei/digitcipher/internal/db"
	"github.com/toeirei/digitcipher/internal/i18n"
)

// historyLimit caps the rows loaded into the table.
const historyLimit = 500

type historyLoadedMsg struct {
	entries []db.HistoryEntry
	err     error
}

type historyViewModel struct {
	lister  HistoryLister
	table   table.Model
	entries []db.HistoryEntry
	loaded  bool
	err     error
}

func newHistoryViewModel(lister HistoryLister) *historyViewModel {
	columns := []table.Column{
		{Title: i18n.T("history.header.time"), Width: 20},
		{Title: i18n.T("history.header.direction"), Width: 12},
		{Title: i18n.T("history.header.input"), Width: 10},
		{Title: i18n.T("history.header.output"), Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	return &historyViewModel{lister: lister, table: t}
}

func (m *historyViewModel) Init() tea.Cmd { return m.loadCmd() }

func (m *historyViewModel) loadCmd() tea.Cmd {
	if m.lister == nil {
		return nil
	}
	lister := m.lister
	return func() tea.Msg {
		entries, err := lister.List(context.Background(), historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *historyViewModel) setSize(msg tea.WindowSizeMsg) {
	// Leave room for title and footer.
	if h := msg.Height - 8; h > 3 {
		m.table.SetHeight(h)
	}
}

func (m *historyViewModel) rebuildTableRows() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		dir := e.Direction
		if d, err := core.ParseDirection(e.Direction); err == nil {
			dir = i18n.T(d.MessageID())
		}
		rows = append(rows, table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			dir,
			e.Input,
			e.Output,
		})
	}
	m.table.SetRows(rows)
}

func (m *historyViewModel) Update(msg tea.Msg) (*historyViewModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loaded = true
		m.err = msg.err
		m.entries = msg.entries
		m.rebuildTableRows()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "r":
			return m, m.loadCmd()
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *historyViewModel) View(width int) string {
	title := mainTitleStyle.Render("🕘 " + i18n.T("history.title"))

	var body string
	switch {
	case m.lister == nil:
		body = helpStyle.Render(i18n.T("history.disabled"))
	case m.err != nil:
		body = errorStyle.Render(i18n.T("error.generic", m.err))
	case m.loaded && len(m.entries) == 0:
		body = helpStyle.Render(i18n.T("history.empty"))
	default:
		body = m.table.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, paneStyle.Render(body), "", renderFooter(i18n.T("history.help"), "", width))
}
