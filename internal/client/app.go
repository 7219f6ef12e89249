// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/password-vault/internal/config"
	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/tui"
	"github.com/MKhiriev/password-vault/internal/vault"
)

// App assembles the client runtime: the vault core, the background refresh
// job, and the terminal UI.
type App struct {
	ui      *tui.TUI
	store   *vault.VaultStore
	auth    *vault.AuthClient
	guard   *vault.Guard
	refresh *vault.RefreshJob
	workers config.ClientWorkers
	logger  *logger.Logger
}

// NewApp wires all client collaborators together. The session starts with
// the configured secret key, if any; the guard sends the user through login
// (and key setup when no key is configured) before the first vault
// operation.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ui := tui.New(cfg.App.Version, cfg.App.SecretKey, log)

	guard := vault.NewGuard(&vault.SessionContext{SecretKey: cfg.App.SecretKey}, ui, ui, log)

	authClient, err := vault.NewAuthClient(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create auth client: %w", err)
	}

	syncClient, err := vault.NewSyncClient(cfg.Adapter, guard, log)
	if err != nil {
		return nil, fmt.Errorf("create sync client: %w", err)
	}

	codec := vault.NewRecordCodec(vault.NewFieldCipher(log))
	store := vault.NewVaultStore(guard, syncClient, codec, ui, log)

	return &App{
		ui:      ui,
		store:   store,
		auth:    authClient,
		guard:   guard,
		refresh: vault.NewRefreshJob(store),
		workers: cfg.Workers,
		logger:  log,
	}, nil
}

// Run starts the background refresh and blocks in the terminal UI until the
// user quits or the process receives a stop signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.refresh.Start(ctx, a.workers.RefreshInterval)
	defer a.refresh.Stop()

	if err := a.ui.Run(ctx, a.store, a.auth, a.guard); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	a.logger.Info().Msg("client exited")
	return nil
}
