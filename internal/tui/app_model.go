// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/vault"
	"github.com/MKhiriev/password-vault/models"
)

type screen int

const (
	screenLogin screen = iota
	screenKeySetup
	screenList
	screenDetail
	screenForm
	screenConfirm
)

const statusDisplayTime = 3 * time.Second

// appModel is the single bubbletea model behind every screen. Vault state
// lives in the store; the model keeps only a display snapshot of it plus the
// transient input state of the active screen.
type appModel struct {
	ctx     context.Context
	store   *vault.VaultStore
	auth    *vault.AuthClient
	guard   *vault.Guard
	logger  *logger.Logger
	version string

	// presetKey is the configured vault key; when set, login goes straight
	// to the list screen
	presetKey string

	screen screen

	// login / register
	loginInputs  []textinput.Model
	loginFocus   int
	registerMode bool
	authBusy     bool
	authErr      string
	pendingToken string
	pendingLogin string

	// master key setup
	keyInput textinput.Model
	keyErr   string

	// list / detail
	records []models.VaultRecord
	idx     int
	loading bool
	spinner spinner.Model

	// add / edit form; formID is empty while adding
	formInputs []textinput.Model
	formFocus  int
	formID     string
	formBusy   bool
	formErr    string

	// delete confirmation
	confirmID    string
	confirmTitle string

	status string
	errMsg string
}

func newAppModel(ctx context.Context, store *vault.VaultStore, auth *vault.AuthClient, guard *vault.Guard, version, presetKey string, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:       ctx,
		store:     store,
		auth:      auth,
		guard:     guard,
		logger:    log,
		version:   version,
		presetKey: presetKey,
		spinner:   s,
	}
	m.initLoginInputs()
	return m
}

func (m *appModel) initLoginInputs() {
	login := textinput.New()
	login.Placeholder = "Login"
	login.Width = 40
	login.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.loginInputs = []textinput.Model{login, password}
	m.loginFocus = 0
}

func (m *appModel) initKeyInput() {
	in := textinput.New()
	in.Placeholder = "Master key"
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Focus()

	m.keyInput = in
	m.keyErr = ""
}

func (m *appModel) initFormInputs(rec models.VaultRecord) {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 40
	title.SetValue(rec.Title)
	title.Focus()

	username := textinput.New()
	username.Placeholder = "Username"
	username.Width = 40
	username.SetValue(rec.Username)

	password := textinput.New()
	password.Placeholder = "Password"
	password.Width = 40
	password.SetValue(rec.Password)

	notes := textinput.New()
	notes.Placeholder = "Notes (optional)"
	notes.Width = 40
	notes.SetValue(rec.Notes)

	m.formInputs = []textinput.Model{title, username, password, notes}
	m.formFocus = 0
	m.formID = rec.ID
	m.formErr = ""
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) current() (models.VaultRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.VaultRecord{}, false
	}
	return m.records[m.idx], true
}

// refreshRecords re-snapshots the store and clamps the cursor.
func (m *appModel) refreshRecords() {
	m.records = m.store.Records()
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navigateMsg:
		return m.handleNavigate(msg)

	case noticeMsg:
		if msg.failure {
			m.errMsg = msg.text
			return m, nil
		}
		m.status = msg.text
		m.errMsg = ""
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case authDoneMsg:
		m.authBusy = false
		if msg.err != nil {
			m.authErr = authErrorText(msg.err)
			return m, nil
		}
		m.pendingToken = msg.token
		m.pendingLogin = msg.login
		m.authErr = ""
		if m.presetKey != "" {
			return m.enterVault(m.presetKey)
		}
		m.screen = screenKeySetup
		m.initKeyInput()
		return m, textinput.Blink

	case loadDoneMsg:
		m.loading = false
		m.refreshRecords()
		if msg.err != nil && !handledByGuard(msg.err) {
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case recordSavedMsg:
		m.formBusy = false
		if msg.err != nil {
			if !handledByGuard(msg.err) {
				m.formErr = msg.err.Error()
			}
			return m, nil
		}
		m.refreshRecords()
		m.screen = screenList
		return m, nil

	case recordDeletedMsg:
		m.refreshRecords()
		if m.screen == screenConfirm {
			m.screen = screenList
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.authBusy && !m.formBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenKeySetup:
		return m.updateKeySetup(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenKeySetup:
		return m.viewKeySetup()
	case screenList:
		return m.viewList()
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	case screenConfirm:
		return m.viewConfirm()
	}
	return ""
}

func (m appModel) handleNavigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	switch msg.target {
	case screenLogin:
		m.screen = screenLogin
		m.registerMode = false
		m.authBusy = false
		m.authErr = ""
		m.pendingToken = ""
		m.pendingLogin = ""
		m.initLoginInputs()
		return m, textinput.Blink
	case screenKeySetup:
		m.screen = screenKeySetup
		m.initKeyInput()
		return m, textinput.Blink
	default:
		m.screen = msg.target
		return m, nil
	}
}

// enterVault installs the fresh session and kicks off the first load.
func (m appModel) enterVault(secretKey string) (tea.Model, tea.Cmd) {
	m.guard.SetSession(&vault.SessionContext{
		Token:     m.pendingToken,
		SecretKey: secretKey,
		Login:     m.pendingLogin,
	})

	m.screen = screenList
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m *appModel) cycleFocus(inputs []textinput.Model, focus *int, backwards bool) {
	inputs[*focus].Blur()
	if backwards {
		*focus = (*focus - 1 + len(inputs)) % len(inputs)
	} else {
		*focus = (*focus + 1) % len(inputs)
	}
	inputs[*focus].Focus()
}

// ---- commands ----

func (m appModel) cmdAuth(login, password string) tea.Cmd {
	register := m.registerMode
	return func() tea.Msg {
		var (
			token string
			err   error
		)
		if register {
			token, err = m.auth.Register(m.ctx, login, password)
		} else {
			token, err = m.auth.Login(m.ctx, login, password)
		}
		return authDoneMsg{token: token, login: login, err: err}
	}
}

func (m appModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: m.store.Load(m.ctx)}
	}
}

func (m appModel) cmdSave(id string, draft models.RecordDraft) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			return recordSavedMsg{err: m.store.Add(m.ctx, draft)}
		}
		return recordSavedMsg{err: m.store.Edit(m.ctx, id, draft)}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return recordDeletedMsg{err: m.store.Remove(m.ctx, id)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// handledByGuard reports whether the error has already produced its own
// notice or navigation, so the screen must not report it again.
func handledByGuard(err error) bool {
	return errors.Is(err, vault.ErrNoSession) ||
		errors.Is(err, vault.ErrNoSecretKey) ||
		errors.Is(err, vault.ErrUnauthorized) ||
		errors.Is(err, vault.ErrCancelled)
}

func authErrorText(err error) string {
	if errors.Is(err, vault.ErrUnauthorized) {
		if detail := strings.TrimPrefix(err.Error(), vault.ErrUnauthorized.Error()+": "); detail != err.Error() {
			return detail
		}
		return "invalid login/password"
	}
	return "server unavailable, try again later"
}
