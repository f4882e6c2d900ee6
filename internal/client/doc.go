// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the Coffee Shop command-line client runtime.
//
// It validates the compiled-in environment, resolves the access token and
// dispatches subcommands to the drinks API adapter and the login flow.
package client
