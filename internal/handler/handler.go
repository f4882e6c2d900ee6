// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"sync/atomic"

	"github.com/MKhiriev/coffee-shop-client/internal/logger"
)

// CallbackHandler receives the access token delivered by the callback page.
type CallbackHandler struct {
	tokens    chan string
	delivered atomic.Bool

	logger *logger.Logger
}

func NewCallbackHandler(logger *logger.Logger) *CallbackHandler {
	logger.Info().Msg("callback handler created")
	return &CallbackHandler{
		tokens: make(chan string, 1),
		logger: logger,
	}
}

// Tokens returns the channel the first valid access token is sent on.
func (h *CallbackHandler) Tokens() <-chan string {
	return h.tokens
}
