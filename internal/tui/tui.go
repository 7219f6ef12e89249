// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/vault"
)

// TUI runs the terminal client and doubles as the core's navigation and
// notification sink. Messages arriving before the program is running (or
// after it has exited) are dropped; there is no screen to show them on.
type TUI struct {
	version   string
	secretKey string
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

// New creates an idle TUI. The program starts in [TUI.Run]. A non-empty
// secretKey skips the interactive master key prompt after login.
func New(version, secretKey string, log *logger.Logger) *TUI {
	return &TUI{version: version, secretKey: secretKey, logger: log}
}

// Run builds the root model over the given collaborators and blocks until
// the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, store *vault.VaultStore, auth *vault.AuthClient, guard *vault.Guard) error {
	model := newAppModel(ctx, store, auth, guard, t.version, t.secretKey, t.logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.setProgram(program)
	defer t.setProgram(nil)

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()
	return err
}

func (t *TUI) setProgram(p *tea.Program) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = p
}

// send queues a message into the running program. Safe from any goroutine.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// ToLogin implements [vault.Navigator].
func (t *TUI) ToLogin() {
	t.send(navigateMsg{target: screenLogin})
}

// ToKeySetup implements [vault.Navigator].
func (t *TUI) ToKeySetup() {
	t.send(navigateMsg{target: screenKeySetup})
}

// Success implements [vault.Notifier].
func (t *TUI) Success(msg string) {
	t.send(noticeMsg{text: msg})
}

// Error implements [vault.Notifier].
func (t *TUI) Error(msg string) {
	t.send(noticeMsg{text: msg, failure: true})
}
