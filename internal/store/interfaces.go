package store

import (
	"context"

	"github.com/MKhiriev/password-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrLoginAlreadyExists] on a duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin fetches the account with the given login. Returns
	// [ErrUserNotFound] when no such account exists.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// VaultRepository persists a user's encrypted vault records. All operations
// are scoped by userID; a record owned by another user behaves as absent.
type VaultRepository interface {
	// ListByUser returns all records of the user ordered by creation time
	// descending.
	ListByUser(ctx context.Context, userID int64) ([]models.EncryptedRecord, error)

	// GetByID fetches one record. Returns [ErrRecordNotFound] when the record
	// does not exist or is not owned by userID.
	GetByID(ctx context.Context, userID int64, id string) (models.EncryptedRecord, error)

	// Create inserts a record under the given id and returns the stored row.
	Create(ctx context.Context, userID int64, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error)

	// Update replaces the encrypted fields of the record and returns the
	// stored row. Returns [ErrRecordNotFound] when the record does not exist
	// or is not owned by userID.
	Update(ctx context.Context, userID int64, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error)

	// Delete removes the record. Returns [ErrRecordNotFound] under the same
	// ownership condition as Update.
	Delete(ctx context.Context, userID int64, id string) error
}
