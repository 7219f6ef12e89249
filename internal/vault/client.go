package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/password-vault/internal/config"
	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/utils"
	"github.com/MKhiriev/password-vault/models"
)

// SyncClient is the HTTP implementation of [RemoteVault]. Every operation
// asks the guard for a session first, attaches the bearer token, and maps
// transport failures to the package sentinels. An unauthorized response is
// routed through the guard before the error is returned, so callers never
// need to react to 401 themselves.
type SyncClient struct {
	client *utils.HTTPClient
	guard  SessionKeeper
	logger *logger.Logger
}

// NewSyncClient constructs a SyncClient against the persistence service at
// adapterCfg.HTTPAddress. Returns an error if the address is empty or cannot
// be parsed as a URL.
func NewSyncClient(adapterCfg config.ClientAdapter, guard SessionKeeper, log *logger.Logger) (*SyncClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid vault server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &SyncClient{client: client, guard: guard, logger: log}, nil
}

// ListAll implements [RemoteVault].
func (s *SyncClient) ListAll(ctx context.Context) ([]models.EncryptedRecord, error) {
	sess, err := s.guard.Require()
	if err != nil {
		return nil, err
	}

	resp, err := s.authedRequest(ctx, sess).Get("/api/vault")
	if err != nil {
		return nil, s.transportError(ctx, "list vault", err)
	}
	if err = s.mapStatus(resp); err != nil {
		return nil, err
	}

	var env models.VaultListResponse
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode vault list response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrServerRejected, env.Error)
	}

	return env.Passwords, nil
}

// Create implements [RemoteVault].
func (s *SyncClient) Create(ctx context.Context, draft models.EncryptedDraft) (models.EncryptedRecord, error) {
	sess, err := s.guard.Require()
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	resp, err := s.authedRequest(ctx, sess).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post("/api/vault")
	if err != nil {
		return models.EncryptedRecord{}, s.transportError(ctx, "create record", err)
	}
	if err = s.mapStatus(resp); err != nil {
		return models.EncryptedRecord{}, err
	}

	return decodeRecordEnvelope(resp.Body())
}

// Update implements [RemoteVault].
func (s *SyncClient) Update(ctx context.Context, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error) {
	sess, err := s.guard.Require()
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	resp, err := s.authedRequest(ctx, sess).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Put("/api/vault/" + url.PathEscape(id))
	if err != nil {
		return models.EncryptedRecord{}, s.transportError(ctx, "update record", err)
	}
	if err = s.mapStatus(resp); err != nil {
		return models.EncryptedRecord{}, err
	}

	return decodeRecordEnvelope(resp.Body())
}

// Remove implements [RemoteVault].
func (s *SyncClient) Remove(ctx context.Context, id string) error {
	sess, err := s.guard.Require()
	if err != nil {
		return err
	}

	resp, err := s.authedRequest(ctx, sess).Delete("/api/vault/" + url.PathEscape(id))
	if err != nil {
		return s.transportError(ctx, "delete record", err)
	}
	if err = s.mapStatus(resp); err != nil {
		return err
	}

	var env models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode delete response: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrServerRejected, env.Error)
	}

	return nil
}

func (s *SyncClient) authedRequest(ctx context.Context, sess *SessionContext) *resty.Request {
	return s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+sess.Token)
}

// transportError distinguishes an abandoned request from a genuine network
// failure. Only the caller's own cancellation or deadline stays silent; a
// request timeout with a live caller context is a transport failure.
func (s *SyncClient) transportError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}

	s.logger.Err(err).Str("op", op).Msg("vault request failed")
	return fmt.Errorf("%s: %w", op, err)
}

// mapStatus converts a non-2xx transport status into a package sentinel.
// An unauthorized response additionally triggers the guard so the session is
// torn down exactly once.
func (s *SyncClient) mapStatus(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if msg := envelopeError(resp.Body()); msg != "" {
		body = msg
	}

	switch code {
	case http.StatusUnauthorized:
		s.guard.HandleUnauthorized()
		return ErrUnauthorized
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}

func decodeRecordEnvelope(body []byte) (models.EncryptedRecord, error) {
	var env models.VaultRecordResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("decode record response: %w", err)
	}
	if !env.Success || env.Password == nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %s", ErrServerRejected, env.Error)
	}

	return *env.Password, nil
}

// envelopeError extracts the error message from a response envelope, if the
// body is one.
func envelopeError(body []byte) string {
	var env models.MessageResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Error
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
