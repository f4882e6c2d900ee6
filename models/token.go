package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Permissions checked by the Coffee Shop API for its protected endpoints.
const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

// Token is an Auth0 access token as seen by the client.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set and therefore
// implements [jwt.Claims], so it can be passed directly to the jwt parser.
type Token struct {
	jwt.RegisteredClaims

	// Permissions is the RBAC "permissions" claim Auth0 adds when the API
	// has "Add Permissions in the Access Token" enabled.
	Permissions []string `json:"permissions,omitempty"`

	// SignedString is the compact serialized token sent in the
	// Authorization header.
	SignedString string `json:"-"`
}

// Can reports whether the token grants permission.
func (t *Token) Can(permission string) bool {
	return slices.Contains(t.Permissions, permission)
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
