package config

import (
	"fmt"
	"time"
)

const (
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// ServerConfig is the server-specific view over [StructuredConfig]. It maps
// only the fields the vault server consumes.
type ServerConfig struct {
	// App contains token and password hashing settings.
	App App
	// Storage contains database connection settings.
	Storage Storage
	// Server contains listen address and timeout settings.
	Server Server
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration. Zero-valued durations fall back to
// defaults; missing secrets and addresses are validation errors.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return serverCfg, serverCfg.validate()
}
