package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rec, exists := m.current()
	if !exists {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList

	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.reveal):
		m.store.ToggleVisibility(rec.ID)

	case key.Matches(keyMsg, keys.edit):
		m.initFormInputs(rec)
		m.screen = screenForm

	case key.Matches(keyMsg, keys.remove):
		m.confirmID = rec.ID
		m.confirmTitle = rec.Title
		m.screen = screenConfirm

	case key.Matches(keyMsg, keys.copyPwd):
		m.store.CopyField(rec.Password, "Password")

	case key.Matches(keyMsg, keys.copyUsr):
		m.store.CopyField(rec.Username, "Username")
	}

	return m, nil
}

func (m appModel) viewDetail() string {
	rec, exists := m.current()
	if !exists {
		return renderPage("Password Vault", "Record is gone.", "esc back")
	}

	data := fmt.Sprintf("Title:     %s\n", rec.Title)
	data += fmt.Sprintf("Username:  %s\n", rec.Username)
	data += fmt.Sprintf("Password:  %s\n", maskedValue(rec.Password, m.store.Visible(rec.ID)))
	data += fmt.Sprintf("Notes:     %s\n", valueOrDash(rec.Notes))
	data += fmt.Sprintf("Created:   %s\n", valueOrDash(rec.CreatedAt))

	data += m.noticeLines()

	help := "space reveal  e edit  d delete  c copy password  u copy username  esc back"
	return renderPage(titleStyle.Render(rec.Title), data, help)
}
