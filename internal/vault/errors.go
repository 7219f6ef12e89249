// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

// Sentinel errors returned by the client core. Callers should match against
// them with [errors.Is]; none of them carries server-side detail beyond what
// is safe to show a user.
var (
	// ErrNoSession is returned when no bearer token is available before a
	// remote call. The guard has already navigated to the login flow.
	ErrNoSession = errors.New("no session token")

	// ErrNoSecretKey is returned when the vault secret key is missing. The
	// guard has already navigated to the key-setup flow.
	ErrNoSecretKey = errors.New("vault secret key missing")

	// ErrUnauthorized is returned when the server rejects the bearer token.
	// The guard has already cleared the session and navigated to login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the target record does not exist or is
	// not owned by the caller.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest is returned when the server rejects the request body
	// (e.g. a required field is missing).
	ErrBadRequest = errors.New("bad request")

	// ErrCancelled is returned when an in-flight request was abandoned by
	// its caller. It must be swallowed silently: no notification, no state
	// change.
	ErrCancelled = errors.New("request cancelled")

	// ErrServerRejected is returned when the response envelope reports
	// success=false even though the transport status did not. The envelope
	// flag is authoritative.
	ErrServerRejected = errors.New("server rejected request")
)
