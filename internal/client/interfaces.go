// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the requested command and returns when it is done.
	Run(ctx context.Context) error
}

// CallbackWaiter blocks until the login callback delivers an access token.
type CallbackWaiter interface {
	Wait(ctx context.Context) (string, error)
}

// WaiterFactory creates the CallbackWaiter for one login. It is called
// lazily so commands that do not log in never need callback TLS material.
type WaiterFactory func() (CallbackWaiter, error)
