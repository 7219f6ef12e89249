// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"

	"github.com/MKhiriev/password-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// RemoteVault defines the four operations the persistence service exposes
// for a user's encrypted collection. [SyncClient] is the HTTP implementation;
// tests substitute a mock.
type RemoteVault interface {
	// ListAll fetches the user's entire encrypted collection, ordered by
	// creation time descending. A caller may abandon the request via ctx;
	// the implementation then returns [ErrCancelled].
	ListAll(ctx context.Context) ([]models.EncryptedRecord, error)

	// Create persists a new encrypted record. The server assigns ID and
	// CreatedAt and echoes the authoritative stored record back.
	Create(ctx context.Context, draft models.EncryptedDraft) (models.EncryptedRecord, error)

	// Update replaces the encrypted fields of the record identified by id
	// and returns the authoritative post-update record. Returns
	// [ErrNotFound] if the record does not exist or is not owned by the
	// caller.
	Update(ctx context.Context, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error)

	// Remove deletes the record identified by id. Returns [ErrNotFound]
	// under the same ownership condition as Update.
	Remove(ctx context.Context, id string) error
}

// SessionKeeper gates vault operations on session presence and centralises
// the reaction to authorization loss. [Guard] is the production
// implementation.
type SessionKeeper interface {
	// Require returns the current session when both the bearer token and
	// the secret key are present. Otherwise it triggers the corresponding
	// navigation (key setup or login) and returns [ErrNoSecretKey] or
	// [ErrNoSession]; the caller must abort before any network call.
	Require() (*SessionContext, error)

	// HandleUnauthorized reacts to a server-side authorization failure:
	// it clears the local credential, surfaces a "session expired" notice,
	// and navigates to login. Idempotent under overlapping failures.
	HandleUnauthorized()
}

// Navigator abstracts screen transitions triggered by the session guard.
type Navigator interface {
	ToLogin()
	ToKeySetup()
}

// Notifier surfaces user-visible notices (the web original's toasts).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
