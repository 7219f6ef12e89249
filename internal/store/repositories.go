package store

import (
	"github.com/MKhiriev/password-vault/internal/logger"
)

// Repositories bundles all server-side persistence backends.
type Repositories struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

// NewRepositories wires all repositories over one database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, log),
		VaultRepository: NewVaultRepository(db, log),
	}
}
