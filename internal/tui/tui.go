// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for digitcipher.
// This file holds the top-level model, which routes messages to the active
// view and owns the navigation state machine.
package tui // import "github.com/toeirei/digitcipher/internal/tui"

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/digitcipher/internal/core"
	"github.com/toeirei/digitcipher/internal/db"
	"github.com/toeirei/digitcipher/internal/i18n"
	"github.com/toeirei/digitcipher/internal/logging"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	homeView viewState = iota
	encodeView
	decodeView
	historyView
	languageView
)

func (s viewState) String() string {
	switch s {
	case homeView:
		return "home"
	case encodeView:
		return "encode"
	case decodeView:
		return "decode"
	case historyView:
		return "history"
	case languageView:
		return "language"
	default:
		return fmt.Sprintf("view(%d)", int(s))
	}
}

// navEvent is a navigation request raised by a view.
type navEvent int

const (
	navEncode navEvent = iota
	navDecode
	navHistory
	navLanguage
	navBack
)

// transition is the navigation state machine. Forward moves are only
// possible from the home view; back always returns home. Anything else
// leaves the state unchanged.
func transition(from viewState, ev navEvent) viewState {
	if ev == navBack {
		return homeView
	}
	if from != homeView {
		return from
	}
	switch ev {
	case navEncode:
		return encodeView
	case navDecode:
		return decodeView
	case navHistory:
		return historyView
	case navLanguage:
		return languageView
	}
	return from
}

// backToMenuMsg asks the main model to return to the home view.
type backToMenuMsg struct{}

// languageChangedMsg signals that every view must be rebuilt with new
// translations. err is set when the choice could not be persisted.
type languageChangedMsg struct{ err error }

// HistoryLister provides the entries shown in the history view.
type HistoryLister interface {
	List(ctx context.Context, limit int) ([]db.HistoryEntry, error)
}

// Options carries the dependencies of the TUI.
type Options struct {
	Converter *core.Converter
	// History is nil when history recording is disabled.
	History HistoryLister
	// SaveLanguage persists a language choice. May be nil.
	SaveLanguage func(lang string) error
}

// mainModel is the top-level model. It acts as a router, delegating updates
// and rendering to the active sub-model.
type mainModel struct {
	opts     Options
	state    viewState
	home     homeModel
	form     *convertFormModel
	history  *historyViewModel
	language languageModel
	width    int
	height   int
	err      error
}

func newMainModel(opts Options) mainModel {
	if opts.Converter == nil {
		opts.Converter = core.NewConverter(nil)
	}
	return mainModel{
		opts:  opts,
		state: homeView,
		home:  newHomeModel(),
	}
}

func (m mainModel) Init() tea.Cmd { return nil }

// navigate applies ev and builds the sub-model for the view entered.
func (m mainModel) navigate(ev navEvent) (mainModel, tea.Cmd) {
	next := transition(m.state, ev)
	if next == m.state {
		return m, nil
	}
	m.state = next
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	switch next {
	case encodeView:
		m.form = newConvertFormModel(m.opts.Converter, core.DirectionEncode)
		return m, m.form.Init()
	case decodeView:
		m.form = newConvertFormModel(m.opts.Converter, core.DirectionDecode)
		return m, m.form.Init()
	case historyView:
		m.history = newHistoryViewModel(m.opts.History)
		m.history.setSize(size)
		return m, m.history.Init()
	case languageView:
		m.language = newLanguageModel(m.opts.SaveLanguage)
	case homeView:
		m.form = nil
		m.history = nil
		m.err = nil
	}
	return m, nil
}

// Update is the main message loop.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.history != nil {
			m.history.setSize(msg)
		}
		return m, nil
	case backToMenuMsg:
		return m.navigate(navBack)
	case languageChangedMsg:
		fresh := newMainModel(m.opts)
		fresh.width = m.width
		fresh.height = m.height
		fresh.err = msg.err
		return fresh, nil
	}

	switch m.state {
	case encodeView, decodeView:
		m.form, cmd = m.form.Update(msg)
	case historyView:
		m.history, cmd = m.history.Update(msg)
	case languageView:
		m.language, cmd = m.language.Update(msg)
	default:
		var ev navEvent
		var ok bool
		m.home, ev, ok, cmd = m.home.Update(msg)
		if ok {
			return m.navigate(ev)
		}
	}
	return m, cmd
}

// View delegates rendering to the active sub-model.
func (m mainModel) View() string {
	var body string
	switch m.state {
	case encodeView, decodeView:
		body = m.form.View(m.width)
	case historyView:
		body = m.history.View(m.width)
	case languageView:
		body = m.language.View(m.width)
	default:
		body = m.home.View(m.width)
	}
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, errorStyle.Padding(1, 2).Render(i18n.T("error.generic", m.err)))
	}
	return body
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newMainModel(opts), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
