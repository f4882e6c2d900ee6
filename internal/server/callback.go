// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/coffee-shop-client/internal/config"
	"github.com/MKhiriev/coffee-shop-client/internal/environment"
	"github.com/MKhiriev/coffee-shop-client/internal/handler"
	"github.com/MKhiriev/coffee-shop-client/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// CallbackServer listens on the host of the callback URL until the login
// page delivers an access token.
type CallbackServer struct {
	handler  *handler.CallbackHandler
	server   *http.Server
	useTLS   bool
	certFile string
	keyFile  string

	logger *logger.Logger
}

// NewCallbackServer prepares a listener for env's callback URL. An https
// callback URL needs cfg.CertFile and cfg.KeyFile.
func NewCallbackServer(env environment.EnvironmentConfig, cfg config.Auth, logger *logger.Logger) (*CallbackServer, error) {
	u, err := url.Parse(env.Auth.CallbackURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCallbackURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidCallbackURL, env.Auth.CallbackURL)
	}

	useTLS := u.Scheme == "https"
	if useTLS && (cfg.CertFile == "" || cfg.KeyFile == "") {
		return nil, ErrTLSRequired
	}

	h := handler.NewCallbackHandler(logger)
	return &CallbackServer{
		handler: h,
		server: &http.Server{
			Addr:              listenAddr(u),
			Handler:           h.Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		useTLS:   useTLS,
		certFile: cfg.CertFile,
		keyFile:  cfg.KeyFile,
		logger:   logger,
	}, nil
}

// Addr returns the address the server listens on.
func (s *CallbackServer) Addr() string {
	return s.server.Addr
}

// Wait serves the callback page until an access token arrives, the server
// fails or ctx is done. The listener is shut down before Wait returns.
func (s *CallbackServer) Wait(ctx context.Context) (string, error) {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}

	return s.serve(ctx, ln)
}

func (s *CallbackServer) serve(ctx context.Context, ln net.Listener) (string, error) {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Bool("tls", s.useTLS).Msg("callback server started")

		var err error
		if s.useTLS {
			err = s.server.ServeTLS(ln, s.certFile, s.keyFile)
		} else {
			err = s.server.Serve(ln)
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	defer s.shutdown()

	select {
	case token := <-s.handler.Tokens():
		return token, nil
	case err := <-errCh:
		return "", fmt.Errorf("callback server: %w", err)
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for login callback: %w", ctx.Err())
	}
}

func (s *CallbackServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("callback server shutdown")
		return
	}
	s.logger.Info().Msg("callback server shut down gracefully")
}

func listenAddr(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return net.JoinHostPort(u.Hostname(), "443")
	}
	return net.JoinHostPort(u.Hostname(), "80")
}
