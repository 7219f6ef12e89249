package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/password-vault/models"
)

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenList
			return m, nil

		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.cycleFocus(m.formInputs, &m.formFocus, false)
			return m, nil

		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.cycleFocus(m.formInputs, &m.formFocus, true)
			return m, nil

		case key.Matches(keyMsg, keys.enter):
			if m.formBusy {
				return m, nil
			}
			draft := models.RecordDraft{
				Title:    strings.TrimSpace(m.formInputs[0].Value()),
				Username: m.formInputs[1].Value(),
				Password: m.formInputs[2].Value(),
				Notes:    m.formInputs[3].Value(),
			}
			if draft.Title == "" || draft.Username == "" || draft.Password == "" {
				m.formErr = "title, username and password are required"
				return m, nil
			}
			m.formBusy = true
			m.formErr = ""
			return m, tea.Batch(m.cmdSave(m.formID, draft), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m appModel) viewForm() string {
	title := "New Password"
	if m.formID != "" {
		title = "Edit Password"
	}

	var data string
	for _, in := range m.formInputs {
		data += in.View() + "\n"
	}

	if m.formBusy {
		data += "\n" + m.spinner.View() + " saving..."
	}
	if m.formErr != "" {
		data += "\n" + errorStyle.Render(m.formErr)
	}

	return renderPage(title, data, "tab next field  enter save  esc cancel")
}
