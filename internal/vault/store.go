package vault

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/models"
)

// VaultStore holds the decrypted in-memory mirror of the remote collection
// and drives it through the guard, codec, and remote client. It is the only
// component that mutates local state, and it only ever does so from the
// server's authoritative responses: optimistic guesses are never kept.
//
// All operations run on a single cooperative loop; the mutex exists because
// the background refresh job and the UI may still interleave at network-call
// boundaries, and because loads are generation-tagged to discard stale
// completions (a cancelled load finishing after a delete must not resurrect
// the deleted record).
type VaultStore struct {
	guard    SessionKeeper
	remote   RemoteVault
	codec    *RecordCodec
	notifier Notifier
	logger   *logger.Logger

	// clip is the clipboard write seam; tests replace it because headless
	// environments have no clipboard.
	clip func(string) error

	mu      sync.Mutex
	records []models.VaultRecord
	visible map[string]bool
	ready   bool
	loadGen uint64
}

// NewVaultStore constructs an empty, not-yet-ready store.
func NewVaultStore(guard SessionKeeper, remote RemoteVault, codec *RecordCodec, notifier Notifier, log *logger.Logger) *VaultStore {
	return &VaultStore{
		guard:    guard,
		remote:   remote,
		codec:    codec,
		notifier: notifier,
		logger:   log,
		clip:     clipboard.WriteAll,
		visible:  make(map[string]bool),
	}
}

// Load fetches the entire remote collection, decrypts it, and replaces the
// local collection wholesale. A record that fails to decrypt is kept with
// blank fields rather than dropped. A load that was cancelled, or that
// completes after a newer load or mutation, leaves local state untouched
// and surfaces nothing.
func (v *VaultStore) Load(ctx context.Context) error {
	return v.load(ctx, true)
}

// load is the shared fetch path. Background refreshes pass notify=false so
// an offline client is not toasted on every tick; the failure is still
// logged.
func (v *VaultStore) load(ctx context.Context, notify bool) error {
	sess, err := v.guard.Require()
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.loadGen++
	gen := v.loadGen
	v.mu.Unlock()

	encrypted, err := v.remote.ListAll(ctx)
	if err != nil {
		if errors.Is(err, ErrCancelled) || errors.Is(err, ErrUnauthorized) {
			// cancelled: silent by contract; unauthorized: guard already
			// notified and navigated
			return err
		}
		if notify {
			v.notifier.Error("Failed to fetch passwords")
		} else {
			v.logger.Err(err).Msg("background vault refresh failed")
		}
		return err
	}

	decrypted := make([]models.VaultRecord, 0, len(encrypted))
	for _, rec := range encrypted {
		decrypted = append(decrypted, v.codec.DecryptRecord(rec, sess.SecretKey))
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.loadGen {
		v.logger.Debug().Uint64("gen", gen).Msg("discarding stale load completion")
		return nil
	}

	v.records = decrypted
	v.ready = true
	return nil
}

// Add encrypts the draft, creates it remotely, and appends the decrypted
// server echo to the local collection. On any failure the collection is
// unchanged.
func (v *VaultStore) Add(ctx context.Context, draft models.RecordDraft) error {
	sess, err := v.guard.Require()
	if err != nil {
		return err
	}

	enc, err := v.codec.EncryptDraft(draft, sess.SecretKey)
	if err != nil {
		v.logger.Err(err).Msg("encrypt draft for create")
		v.notifier.Error("Failed to add password")
		return err
	}

	created, err := v.remote.Create(ctx, enc)
	if err != nil {
		return v.mutationError(err, "Failed to add password")
	}

	record := v.codec.DecryptRecord(created, sess.SecretKey)

	v.mu.Lock()
	v.replaceOrAppend(record)
	v.loadGen++
	v.mu.Unlock()

	v.notifier.Success("Password added successfully")
	return nil
}

// Edit encrypts the merged record, updates it remotely, and reconciles the
// local record from the server's authoritative response — the same policy as
// Add, applied uniformly. The record keeps its position; ordering is a
// load-time property only.
func (v *VaultStore) Edit(ctx context.Context, id string, draft models.RecordDraft) error {
	sess, err := v.guard.Require()
	if err != nil {
		return err
	}

	enc, err := v.codec.EncryptDraft(draft, sess.SecretKey)
	if err != nil {
		v.logger.Err(err).Msg("encrypt draft for update")
		v.notifier.Error("Failed to update password")
		return err
	}

	updated, err := v.remote.Update(ctx, id, enc)
	if err != nil {
		return v.mutationError(err, "Failed to update password")
	}

	record := v.codec.DecryptRecord(updated, sess.SecretKey)

	v.mu.Lock()
	v.replaceOrAppend(record)
	v.loadGen++
	v.mu.Unlock()

	v.notifier.Success("Password updated successfully")
	return nil
}

// Remove deletes the record remotely and, only once the server confirms,
// locally. A NotFound outcome leaves the local record untouched — the next
// full load is the place where the collections reconverge.
func (v *VaultStore) Remove(ctx context.Context, id string) error {
	if _, err := v.guard.Require(); err != nil {
		return err
	}

	if err := v.remote.Remove(ctx, id); err != nil {
		return v.mutationError(err, "Failed to delete password")
	}

	v.mu.Lock()
	for i, rec := range v.records {
		if rec.ID == id {
			v.records = append(v.records[:i], v.records[i+1:]...)
			break
		}
	}
	delete(v.visible, id)
	v.loadGen++
	v.mu.Unlock()

	v.notifier.Success("Password deleted successfully")
	return nil
}

// Records returns a copy of the current plaintext collection.
func (v *VaultStore) Records() []models.VaultRecord {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.VaultRecord, len(v.records))
	copy(out, v.records)
	return out
}

// Ready reports whether at least one load has completed.
func (v *VaultStore) Ready() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ready
}

// ToggleVisibility flips the password-reveal state for one record. Pure
// local UI state, no network.
func (v *VaultStore) ToggleVisibility(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.visible[id] {
		delete(v.visible, id)
	} else {
		v.visible[id] = true
	}
}

// Visible reports whether the record's password is currently revealed.
func (v *VaultStore) Visible(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible[id]
}

// CopyField writes a field value to the system clipboard. Not part of the
// trust boundary.
func (v *VaultStore) CopyField(value, label string) {
	if err := v.clip(value); err != nil {
		v.logger.Err(err).Msg("clipboard write failed")
		v.notifier.Error("Failed to copy to clipboard")
		return
	}
	v.notifier.Success(label + " copied to clipboard")
}

// mutationError classifies a failed create/update/delete. Cancelled and
// unauthorized outcomes surface nothing here; NotFound gets its own message;
// everything else degrades to the generic notice. Local state has not been
// touched in any of these cases.
func (v *VaultStore) mutationError(err error, generic string) error {
	switch {
	case errors.Is(err, ErrCancelled), errors.Is(err, ErrUnauthorized):
		return err
	case errors.Is(err, ErrNotFound):
		v.notifier.Error("Password not found")
		return err
	default:
		v.notifier.Error(generic)
		return err
	}
}

// replaceOrAppend reconciles one server-returned record into the collection,
// preserving the exactly-one-record-per-ID invariant. Existing records keep
// their position; new ones append.
func (v *VaultStore) replaceOrAppend(record models.VaultRecord) {
	for i, rec := range v.records {
		if rec.ID == record.ID {
			v.records[i] = record
			return
		}
	}
	v.records = append(v.records, record)
}
