package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		id := m.confirmID
		m.confirmID = ""
		return m, m.cmdDelete(id)

	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirmID = ""
		m.screen = screenList
	}

	return m, nil
}

func (m appModel) viewConfirm() string {
	content := "Delete \"" + m.confirmTitle + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
