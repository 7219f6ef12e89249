package vault

import (
	"sync"

	"github.com/MKhiriev/password-vault/internal/logger"
)

// SessionContext pairs the authentication credential with the vault secret
// key. It is constructed once at session start and passed by reference into
// every core operation; nothing re-reads ambient state mid-operation, which
// removes the race between a mid-flight read and a concurrent logout.
type SessionContext struct {
	// Token is the opaque bearer credential issued at login.
	Token string

	// SecretKey is the client-held symmetric secret used to encrypt and
	// decrypt all sensitive fields. Never transmitted.
	SecretKey string

	// Login is the cached identity of the authenticated user. Display
	// only; cleared together with the token.
	Login string
}

// Guard checks session preconditions before any network call and owns the
// reaction to authorization loss. It implements [SessionKeeper].
type Guard struct {
	navigator Navigator
	notifier  Notifier
	logger    *logger.Logger

	mu      sync.Mutex
	session *SessionContext
	expired bool
}

// NewGuard constructs a Guard over the given session.
func NewGuard(session *SessionContext, nav Navigator, notif Notifier, log *logger.Logger) *Guard {
	return &Guard{session: session, navigator: nav, notifier: notif, logger: log}
}

// SetSession installs a fresh session (after login or key setup) and re-arms
// the expiry notice.
func (g *Guard) SetSession(session *SessionContext) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = session
	g.expired = false
}

// Require implements [SessionKeeper]. The secret key is checked before the
// credential: without the key there is nothing a valid token could decrypt.
func (g *Guard) Require() (*SessionContext, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session == nil || g.session.SecretKey == "" {
		g.logger.Warn().Msg("vault secret key missing, redirecting to key setup")
		g.notifier.Error("Vault secret key missing. Please set a master key before using the vault.")
		g.navigator.ToKeySetup()
		return nil, ErrNoSecretKey
	}

	if g.session.Token == "" {
		g.logger.Warn().Msg("no session token, redirecting to login")
		g.navigator.ToLogin()
		return nil, ErrNoSession
	}

	return g.session, nil
}

// HandleUnauthorized implements [SessionKeeper]. Only the first of a burst
// of overlapping failures clears the session, notifies, and navigates;
// subsequent calls are no-ops until a new session is installed.
func (g *Guard) HandleUnauthorized() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.expired {
		return
	}
	g.expired = true

	if g.session != nil {
		g.session.Token = ""
		g.session.Login = ""
	}

	g.logger.Info().Msg("session expired, clearing credential")
	g.notifier.Error("Session expired. Please login again")
	g.navigator.ToLogin()
}
