package tui

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/digitcipher/internal/i18n"
)

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // lang code -> display name
	orderedKeys []string
	cursor      int
	save        func(lang string) error
}

func newLanguageModel(save func(string) error) languageModel {
	choices := i18n.GetAvailableLocales()
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := languageModel{choices: choices, orderedKeys: keys, save: save}
	for i, k := range keys {
		if k == i18n.GetLang() {
			m.cursor = i
		}
	}
	return m
}

func (m languageModel) Update(msg tea.Msg) (languageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc":
		return m, func() tea.Msg { return backToMenuMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.orderedKeys)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.orderedKeys) == 0 {
			return m, nil
		}
		lang := m.orderedKeys[m.cursor]
		i18n.SetLang(lang)
		var saveErr error
		if m.save != nil {
			if err := m.save(lang); err != nil {
				saveErr = fmt.Errorf("failed to save config: %w", err)
			}
		}
		return m, func() tea.Msg { return languageChangedMsg{err: saveErr} }
	}
	return m, nil
}

func (m languageModel) View(width int) string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("menu.language"))

	items := []string{titleStyle.Render(i18n.T("language.select")), ""}
	for i, code := range m.orderedKeys {
		name := m.choices[code]
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+name))
		} else {
			items = append(items, itemStyle.Render("  "+name))
		}
	}
	listPane := paneStyle.Width(60).Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", renderFooter(i18n.T("language.help"), "", width))
}
