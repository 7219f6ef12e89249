package service

import (
	"github.com/MKhiriev/password-vault/internal/config"
	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/store"
)

type Services struct {
	AuthService    AuthService
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg, logger),
		VaultService:   NewVaultService(repositories.VaultRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
