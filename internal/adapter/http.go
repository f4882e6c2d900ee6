// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/coffee-shop-client/internal/config"
	"github.com/MKhiriev/coffee-shop-client/internal/environment"
	"github.com/MKhiriev/coffee-shop-client/internal/logger"
	"github.com/MKhiriev/coffee-shop-client/internal/utils"
	"github.com/MKhiriev/coffee-shop-client/internal/validators"
	"github.com/MKhiriev/coffee-shop-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

type httpDrinksAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPDrinksAdapter returns a [DrinksAdapter] for the API server of env.
//
// cfg.InsecureTLS is honoured only outside production, where the API server
// runs with a self-signed certificate.
func NewHTTPDrinksAdapter(env environment.EnvironmentConfig, cfg config.Adapter, log *logger.Logger) (DrinksAdapter, error) {
	if env.APIServerURL == "" {
		return nil, ErrNoServerURL
	}
	if cfg.InsecureTLS && env.Production {
		return nil, ErrInsecureTLSInProduction
	}

	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", "drinks_adapter")
	})

	cli := resty.New().
		SetBaseURL(strings.TrimRight(env.APIServerURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")
	if cfg.InsecureTLS {
		cli.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // development server uses a self-signed certificate
	}

	a := &httpDrinksAdapter{client: cli, logger: l}
	cli.OnBeforeRequest(a.withTraceID)
	cli.OnAfterResponse(a.logResponse)

	l.Info().Str("base_url", env.APIServerURL).Str("mode", env.Mode()).Msg("drinks adapter created")
	return a, nil
}

// SetToken implements [DrinksAdapter]. It stores token (whitespace-trimmed) for
// the Authorization header of protected requests.
func (h *httpDrinksAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [DrinksAdapter]. It returns the stored bearer token.
func (h *httpDrinksAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListDrinks implements [DrinksAdapter]. It fetches the public short-form list
// from GET /drinks.
func (h *httpDrinksAdapter) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/drinks")
	if err != nil {
		return nil, fmt.Errorf("list drinks request: %w", err)
	}

	var dr models.DrinksResponse
	if err = decodeResponse(resp, &dr); err != nil {
		return nil, err
	}
	return dr.Drinks, nil
}

// ListDrinkDetails implements [DrinksAdapter]. It fetches the long-form list
// from GET /drinks-detail and requires a token.
func (h *httpDrinksAdapter) ListDrinkDetails(ctx context.Context) ([]models.Drink, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/drinks-detail")
	if err != nil {
		return nil, fmt.Errorf("list drink details request: %w", err)
	}

	var dr models.DrinksResponse
	if err = decodeResponse(resp, &dr); err != nil {
		return nil, err
	}
	return dr.Drinks, nil
}

// CreateDrink implements [DrinksAdapter]. It validates drink and posts it to
// POST /drinks.
func (h *httpDrinksAdapter) CreateDrink(ctx context.Context, drink models.Drink) (models.Drink, error) {
	if err := validators.ValidateDrink(drink); err != nil {
		return models.Drink{}, err
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Drink{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.Drink{Title: drink.Title, Recipe: drink.Recipe}).
		Post("/drinks")
	if err != nil {
		return models.Drink{}, fmt.Errorf("create drink request: %w", err)
	}

	var dr models.DrinkResponse
	if err = decodeResponse(resp, &dr); err != nil {
		return models.Drink{}, err
	}
	return dr.Drink, nil
}

// UpdateDrink implements [DrinksAdapter]. It validates patch and sends it to
// PATCH /drinks/{id}, returning the updated drink.
func (h *httpDrinksAdapter) UpdateDrink(ctx context.Context, id int64, patch models.DrinkPatch) (models.Drink, error) {
	if err := validators.ValidateDrinkPatch(id, patch); err != nil {
		return models.Drink{}, err
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Drink{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(patch).
		Patch("/drinks/{id}")
	if err != nil {
		return models.Drink{}, fmt.Errorf("update drink request: %w", err)
	}

	var dr models.DrinksResponse
	if err = decodeResponse(resp, &dr); err != nil {
		return models.Drink{}, err
	}
	if len(dr.Drinks) == 0 {
		return models.Drink{}, fmt.Errorf("update drink: %w: empty drinks list", ErrInternalServerError)
	}
	return dr.Drinks[0], nil
}

// DeleteDrink implements [DrinksAdapter]. It returns the id the server reports
// as deleted.
func (h *httpDrinksAdapter) DeleteDrink(ctx context.Context, id int64) (int64, error) {
	if err := validators.ValidateDrinkID(id); err != nil {
		return 0, err
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/drinks/{id}")
	if err != nil {
		return 0, fmt.Errorf("delete drink request: %w", err)
	}

	var dr models.DeleteResponse
	if err = decodeResponse(resp, &dr); err != nil {
		return 0, err
	}
	return dr.Delete, nil
}

func (h *httpDrinksAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (h *httpDrinksAdapter) withTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(traceIDHeader) == "" {
		req.SetHeader(traceIDHeader, utils.NewTraceID())
	}

	h.logger.Debug().
		Str("trace_id", req.Header.Get(traceIDHeader)).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("sending request")
	return nil
}

func (h *httpDrinksAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("received response")
	return nil
}
