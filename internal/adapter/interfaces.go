// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the Coffee Shop
// API server.
//
// The primary abstraction is [DrinksAdapter], which decouples the client
// runtime from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDrinksAdapter]) whose base URL is the environment's
// API server URL.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/coffee-shop-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/drinks_adapter_mock.go -package=mock

// DrinksAdapter defines communication with the Coffee Shop API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type DrinksAdapter interface {
	// SetToken stores the Auth0 access token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored access token, or an empty string.
	Token() string

	// ListDrinks fetches the public menu (short recipe form). It needs no
	// token.
	ListDrinks(ctx context.Context) ([]models.Drink, error)

	// ListDrinkDetails fetches the menu with full recipes. Requires the
	// "get:drinks-detail" permission.
	ListDrinkDetails(ctx context.Context) ([]models.Drink, error)

	// CreateDrink adds a drink and returns it as stored by the server.
	// Requires the "post:drinks" permission.
	CreateDrink(ctx context.Context, drink models.Drink) (models.Drink, error)

	// UpdateDrink applies patch to the drink with the given id and returns
	// the updated drink. Requires the "patch:drinks" permission.
	UpdateDrink(ctx context.Context, id int64, patch models.DrinkPatch) (models.Drink, error)

	// DeleteDrink removes the drink with the given id and returns the id
	// confirmed by the server. Requires the "delete:drinks" permission.
	DeleteDrink(ctx context.Context, id int64) (int64, error)
}
