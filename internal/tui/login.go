package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.cycleFocus(m.loginInputs, &m.loginFocus, false)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.cycleFocus(m.loginInputs, &m.loginFocus, true)
			return m, nil
		case keyMsg.String() == "ctrl+r":
			m.registerMode = !m.registerMode
			m.authErr = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.authBusy {
				return m, nil
			}
			login := strings.TrimSpace(m.loginInputs[0].Value())
			password := m.loginInputs[1].Value()
			if login == "" || password == "" {
				m.authErr = "login and password are required"
				return m, nil
			}
			m.authBusy = true
			m.authErr = ""
			return m, tea.Batch(m.cmdAuth(login, password), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m appModel) viewLogin() string {
	title := "Password Vault"
	if m.version != "" {
		title += "  v" + m.version
	}

	mode := "Sign in"
	modeHint := "ctrl+r register"
	if m.registerMode {
		mode = "Create account"
		modeHint = "ctrl+r back to sign in"
	}

	data := mode + "\n\n"
	data += m.loginInputs[0].View() + "\n"
	data += m.loginInputs[1].View() + "\n"

	if m.authBusy {
		data += "\n" + m.spinner.View() + " authenticating..."
	}
	if m.authErr != "" {
		data += "\n" + errorStyle.Render(m.authErr)
	}

	help := "tab next field  enter submit  " + modeHint
	return renderPage(title, data, help)
}
