package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/password-vault/internal/vault"
	"github.com/MKhiriev/password-vault/models"
)

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); ok {
			m.screen = screenDetail
		}

	case key.Matches(keyMsg, keys.add):
		m.initFormInputs(models.VaultRecord{})
		m.screen = screenForm

	case key.Matches(keyMsg, keys.edit):
		if rec, ok := m.current(); ok {
			m.initFormInputs(rec)
			m.screen = screenForm
		}

	case key.Matches(keyMsg, keys.remove):
		if rec, ok := m.current(); ok {
			m.confirmID = rec.ID
			m.confirmTitle = rec.Title
			m.screen = screenConfirm
		}

	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)

	case key.Matches(keyMsg, keys.reveal):
		if rec, ok := m.current(); ok {
			m.store.ToggleVisibility(rec.ID)
		}

	case key.Matches(keyMsg, keys.copyPwd):
		if rec, ok := m.current(); ok {
			m.store.CopyField(rec.Password, "Password")
		}

	case key.Matches(keyMsg, keys.copyUsr):
		if rec, ok := m.current(); ok {
			m.store.CopyField(rec.Username, "Username")
		}

	case key.Matches(keyMsg, keys.logout):
		m.guard.SetSession(&vault.SessionContext{})
		m.records = nil
		m.idx = 0
		return m.handleNavigate(navigateMsg{target: screenLogin})
	}

	return m, nil
}

func (m appModel) viewList() string {
	title := "Password Vault"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var data string
	switch {
	case m.loading && len(m.records) == 0:
		data = "Loading..."
	case len(m.records) == 0:
		data = "The vault is empty. Press 'a' to add your first password."
	default:
		for i, rec := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			password := maskedValue(rec.Password, m.store.Visible(rec.ID))
			data += fmt.Sprintf("%s%-24s %-20s %s\n",
				cursor, fitText(rec.Title, 24), fitText(rec.Username, 20), password)
		}
	}

	data += m.noticeLines()

	help := "a add  e edit  d delete  enter open  space reveal  c copy password  u copy username  s reload  l logout  q quit"
	return renderPage(title, data, help)
}

// noticeLines renders the transient status and error lines shared by the
// list and detail screens.
func (m appModel) noticeLines() string {
	var out string
	if m.status != "" {
		out += "\n" + noticeStyle.Render(m.status)
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}
	return out
}
