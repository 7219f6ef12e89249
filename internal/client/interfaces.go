// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the vault client; [App] implements it.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}
