package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/password-vault/models"
)

// AuthService covers user account management and JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService manages a user's encrypted vault records. All field values
// arrive already encrypted on the client side; the service treats them as
// opaque strings and only enforces presence and ownership.
type VaultService interface {
	List(ctx context.Context, userID int64) ([]models.EncryptedRecord, error)
	Get(ctx context.Context, userID int64, id string) (models.EncryptedRecord, error)
	Create(ctx context.Context, userID int64, draft models.EncryptedDraft) (models.EncryptedRecord, error)
	Update(ctx context.Context, userID int64, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
