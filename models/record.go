package models

// CreatedAtLayout is the wire format of record creation dates ("YYYY-MM-DD").
const CreatedAtLayout = "2006-01-02"

// Ciphertext is a string alias representing an encrypted field value.
// The payload is base64(nonce || AES-GCM ciphertext); the server never
// inspects or interprets it. An empty plaintext is represented by an
// empty Ciphertext — optional fields are never encrypted into garbage.
type Ciphertext string

// VaultRecord is one stored credential entry in its plaintext, client-side
// form. Sensitive fields exist in this form only in client memory; they are
// encrypted before leaving the process.
type VaultRecord struct {
	// ID is the opaque server-assigned record identifier (UUID).
	// Immutable once set and never encrypted.
	ID string `json:"id"`

	// Title is the human-readable name of the entry (e.g. "Email").
	Title string `json:"title"`

	// Username is the account identifier stored in the entry.
	Username string `json:"username"`

	// Password is the secret credential stored in the entry.
	Password string `json:"password"`

	// Notes holds optional free-form text. Empty string when absent.
	Notes string `json:"notes"`

	// CreatedAt is the server-assigned creation date in "YYYY-MM-DD" form.
	// Immutable, never encrypted; used for load-time ordering.
	CreatedAt string `json:"createdAt"`
}

// EncryptedRecord is the wire form of a vault record. It is shaped exactly
// like [VaultRecord] but sensitive fields carry ciphertext. ID and CreatedAt
// pass through unencrypted so the server can key and order records.
type EncryptedRecord struct {
	ID        string     `json:"id"`
	Title     Ciphertext `json:"title"`
	Username  Ciphertext `json:"username"`
	Password  Ciphertext `json:"password"`
	Notes     Ciphertext `json:"notes"`
	CreatedAt string     `json:"createdAt"`
}

// RecordDraft is the client-composed plaintext body of a create or update
// operation: a vault record without the server-assigned ID and CreatedAt.
type RecordDraft struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

// EncryptedDraft is the encrypted wire form of [RecordDraft]; it is the body
// sent to the create and update endpoints.
type EncryptedDraft struct {
	Title    Ciphertext `json:"title"`
	Username Ciphertext `json:"username"`
	Password Ciphertext `json:"password"`
	Notes    Ciphertext `json:"notes"`
}
