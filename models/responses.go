package models

// Every API response carries a success flag next to either the payload or an
// error message. Clients must treat the flag as authoritative even when the
// transport status code disagrees (e.g. a proxy rewriting statuses).

// VaultListResponse is the body of GET /api/vault.
type VaultListResponse struct {
	Success bool `json:"success"`

	// Passwords is the user's full encrypted collection, ordered by
	// creation time descending.
	Passwords []EncryptedRecord `json:"passwords,omitempty"`

	Error string `json:"error,omitempty"`
}

// VaultRecordResponse is the body of the single-record endpoints
// (POST /api/vault, GET/PUT /api/vault/{id}).
type VaultRecordResponse struct {
	Success bool `json:"success"`

	// Password is the authoritative server-side state of the record,
	// including the assigned ID and CreatedAt.
	Password *EncryptedRecord `json:"password,omitempty"`

	Error string `json:"error,omitempty"`
}

// MessageResponse is the body of DELETE /api/vault/{id} and other
// confirmation-only endpoints.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
