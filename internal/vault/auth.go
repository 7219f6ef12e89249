package vault

import (
	"context"
	"fmt"

	"github.com/MKhiriev/password-vault/internal/config"
	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/utils"
	"github.com/MKhiriev/password-vault/models"
)

// AuthClient talks to the authentication endpoints of the persistence
// service. The core otherwise treats authentication as an external
// collaborator: it only ever observes the opaque bearer token this client
// brings back.
type AuthClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAuthClient constructs an AuthClient against the same base address as
// the sync client.
func NewAuthClient(adapterCfg config.ClientAdapter, log *logger.Logger) (*AuthClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid vault server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &AuthClient{client: client, logger: log}, nil
}

// Login authenticates the user and returns the bearer token issued by the
// server via the Authorization response header.
func (a *AuthClient) Login(ctx context.Context, login, password string) (string, error) {
	return a.authRequest(ctx, "/api/auth/login", login, password)
}

// Register creates a new account and returns the bearer token for the fresh
// session.
func (a *AuthClient) Register(ctx context.Context, login, password string) (string, error) {
	return a.authRequest(ctx, "/api/auth/register", login, password)
}

func (a *AuthClient) authRequest(ctx context.Context, path, login, password string) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: login, Password: password}).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("auth request: %w", err)
	}

	if resp.StatusCode() != 200 {
		a.logger.Warn().Int("status", resp.StatusCode()).Str("path", path).Msg("auth request rejected")
		if msg := envelopeError(resp.Body()); msg != "" {
			return "", fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return "", ErrUnauthorized
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("parse bearer token: %w", err)
	}

	return token, nil
}
