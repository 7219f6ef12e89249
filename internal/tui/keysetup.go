package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateKeySetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.handleNavigate(navigateMsg{target: screenLogin})
		case key.Matches(keyMsg, keys.enter):
			secret := m.keyInput.Value()
			if secret == "" {
				m.keyErr = "master key must not be empty"
				return m, nil
			}
			return m.enterVault(secret)
		}
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m appModel) viewKeySetup() string {
	data := "Enter the master key used to encrypt your vault.\n"
	data += "The key never leaves this machine.\n\n"
	data += m.keyInput.View() + "\n"

	if m.keyErr != "" {
		data += "\n" + errorStyle.Render(m.keyErr)
	}

	return renderPage("Master Key", data, "enter continue  esc back to login")
}
