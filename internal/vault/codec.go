package vault

import (
	"fmt"

	"github.com/MKhiriev/password-vault/models"
)

// RecordCodec applies the field cipher across all sensitive fields of a
// vault record, both directions. It is pure: no I/O, no state beyond the
// cipher's key cache. ID and CreatedAt are never transformed — they are not
// secret and must remain queryable and orderable on the server.
type RecordCodec struct {
	cipher *FieldCipher
}

// NewRecordCodec constructs a RecordCodec on top of the given field cipher.
func NewRecordCodec(cipher *FieldCipher) *RecordCodec {
	return &RecordCodec{cipher: cipher}
}

// EncryptDraft encrypts the sensitive fields of a draft for transmission.
// Title, username, and password are always encrypted; notes is encrypted
// only when present, otherwise mapped to an empty string (not omitted).
func (c *RecordCodec) EncryptDraft(draft models.RecordDraft, secret string) (models.EncryptedDraft, error) {
	title, err := c.cipher.EncryptField(draft.Title, secret)
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("encrypt title: %w", err)
	}

	username, err := c.cipher.EncryptField(draft.Username, secret)
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("encrypt username: %w", err)
	}

	password, err := c.cipher.EncryptField(draft.Password, secret)
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("encrypt password: %w", err)
	}

	enc := models.EncryptedDraft{
		Title:    models.Ciphertext(title),
		Username: models.Ciphertext(username),
		Password: models.Ciphertext(password),
	}

	if draft.Notes != "" {
		notes, err := c.cipher.EncryptField(draft.Notes, secret)
		if err != nil {
			return models.EncryptedDraft{}, fmt.Errorf("encrypt notes: %w", err)
		}
		enc.Notes = models.Ciphertext(notes)
	}

	return enc, nil
}

// DecryptRecord decrypts a wire record into its plaintext form. Decryption
// inherits the cipher's fail-soft policy: a field that cannot be decrypted
// comes back empty rather than failing the whole record.
func (c *RecordCodec) DecryptRecord(rec models.EncryptedRecord, secret string) models.VaultRecord {
	out := models.VaultRecord{
		ID:        rec.ID,
		Title:     c.cipher.DecryptField(string(rec.Title), secret),
		Username:  c.cipher.DecryptField(string(rec.Username), secret),
		Password:  c.cipher.DecryptField(string(rec.Password), secret),
		CreatedAt: rec.CreatedAt,
	}

	if rec.Notes != "" {
		out.Notes = c.cipher.DecryptField(string(rec.Notes), secret)
	}

	return out
}
