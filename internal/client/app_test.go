package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-shop-client/internal/adapter"
	"github.com/MKhiriev/coffee-shop-client/internal/config"
	"github.com/MKhiriev/coffee-shop-client/internal/environment"
	"github.com/MKhiriev/coffee-shop-client/internal/logger"
	"github.com/MKhiriev/coffee-shop-client/internal/mock"
	"github.com/MKhiriev/coffee-shop-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testEnv = environment.EnvironmentConfig{
	APIServerURL: "https://127.0.0.1:5000",
	Auth: environment.AuthConfig{
		DomainPrefix: "dev-dehgo0dr.us",
		Audience:     "Coffe_Shop",
		ClientID:     "5AyIOToeyyKg9bPEIdAZYwnggj8EGDGS",
		CallbackURL:  "https://127.0.0.1:8100",
	},
}

type fakeWaiter struct {
	token string
	err   error
}

func (f fakeWaiter) Wait(ctx context.Context) (string, error) {
	return f.token, f.err
}

func signedToken(t *testing.T, permissions ...string) string {
	t.Helper()
	claims := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testEnv.Auth.Issuer(),
			Subject:   "auth0|manager",
			Audience:  jwt.ClaimStrings{testEnv.Auth.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Permissions: permissions,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return raw
}

// newTestApp — helper that builds an App with a mocked adapter.
func newTestApp(t *testing.T, ctrl *gomock.Controller, args ...string) (*App, *mock.MockDrinksAdapter, *bytes.Buffer) {
	t.Helper()
	mockAdapter := mock.NewMockDrinksAdapter(ctrl)
	out := &bytes.Buffer{}
	cfg := &config.ClientConfig{
		Auth: config.Auth{LoginTimeout: time.Minute},
		Args: args,
	}

	app, err := NewApp(testEnv, cfg, mockAdapter, func() (CallbackWaiter, error) {
		return fakeWaiter{err: errors.New("no login in this test")}, nil
	}, out, logger.Nop())
	require.NoError(t, err)

	return app, mockAdapter, out
}

// ── NewApp ──────────────────────────────────────────────────────────────────

func TestNewApp_InvalidEnvironment(t *testing.T) {
	env := testEnv
	env.APIServerURL = "not a url"

	app, err := NewApp(env, &config.ClientConfig{}, nil, nil, &bytes.Buffer{}, logger.Nop())
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrInvalidEnvironment)
	assert.ErrorIs(t, err, environment.ErrInvalidURL)
}

// ── Run: local commands ──────────────────────────────────────────────────────

func TestRun_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, out := newTestApp(t, ctrl)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, _ := newTestApp(t, ctrl, "brew")

	assert.ErrorIs(t, app.Run(context.Background()), ErrUnknownCommand)
}

func TestRun_Env(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, out := newTestApp(t, ctrl, "env")

	require.NoError(t, app.Run(context.Background()))

	var got environment.EnvironmentConfig
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, testEnv, got)
	assert.Contains(t, out.String(), `"apiServerUrl"`)
}

func TestRun_LoginURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, out := newTestApp(t, ctrl, "login-url")

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "https://dev-dehgo0dr.us.auth0.com/authorize?")
	assert.Contains(t, out.String(), "client_id=5AyIOToeyyKg9bPEIdAZYwnggj8EGDGS")
}

// ── Run: login ───────────────────────────────────────────────────────────────

func TestRun_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, out := newTestApp(t, ctrl, "login")

	raw := signedToken(t, models.PermissionGetDrinksDetail)
	app.newWaiter = func() (CallbackWaiter, error) { return fakeWaiter{token: raw}, nil }
	mockAdapter.EXPECT().SetToken(raw)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Logged in as auth0|manager")
	assert.Contains(t, out.String(), models.PermissionGetDrinksDetail)
	assert.Contains(t, out.String(), "export COFFEE_AUTH_ACCESS_TOKEN="+raw)
}

func TestRun_Login_Errors(t *testing.T) {
	tests := []struct {
		name   string
		waiter WaiterFactory
	}{
		{"factory error", func() (CallbackWaiter, error) { return nil, errors.New("tls required") }},
		{"wait error", func() (CallbackWaiter, error) { return fakeWaiter{err: context.DeadlineExceeded}, nil }},
		{"bad token", func() (CallbackWaiter, error) { return fakeWaiter{token: "garbage"}, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			app, _, _ := newTestApp(t, ctrl, "login")
			app.newWaiter = tt.waiter

			assert.Error(t, app.Run(context.Background()))
		})
	}
}

// ── Run: drinks ──────────────────────────────────────────────────────────────

func TestRun_Drinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, out := newTestApp(t, ctrl, "drinks")

	ctx := context.Background()
	mockAdapter.EXPECT().ListDrinks(ctx).Return([]models.Drink{{ID: 1, Title: "latte"}}, nil)

	require.NoError(t, app.Run(ctx))
	assert.Contains(t, out.String(), `"title": "latte"`)
}

func TestRun_Drinks_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, _ := newTestApp(t, ctrl, "drinks")

	mockAdapter.EXPECT().ListDrinks(gomock.Any()).Return(nil, adapter.ErrNotFound)

	assert.ErrorIs(t, app.Run(context.Background()), adapter.ErrNotFound)
}

func TestRun_DrinksDetail_WithConfiguredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, out := newTestApp(t, ctrl, "drinks-detail")

	raw := signedToken(t, models.PermissionGetDrinksDetail)
	app.cfg.Auth.AccessToken = raw

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return(""),
		mockAdapter.EXPECT().SetToken(raw),
		mockAdapter.EXPECT().ListDrinkDetails(gomock.Any()).Return([]models.Drink{{ID: 2, Title: "mocha"}}, nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "mocha")
}

func TestRun_DrinksDetail_LoginRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, _ := newTestApp(t, ctrl, "drinks-detail")

	mockAdapter.EXPECT().Token().Return("")

	assert.ErrorIs(t, app.Run(context.Background()), ErrLoginRequired)
}

// TestRun_MissingPermission verifies commands fail before any request when
// the token lacks the permission the API checks.
func TestRun_MissingPermission(t *testing.T) {
	tests := []struct {
		args       []string
		permission string
	}{
		{[]string{"drinks-detail"}, models.PermissionGetDrinksDetail},
		{[]string{"create", `{"title":"x"}`}, models.PermissionPostDrinks},
		{[]string{"update", "1", `{"title":"x"}`}, models.PermissionPatchDrinks},
		{[]string{"delete", "1"}, models.PermissionDeleteDrinks},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			ctrl := gomock.NewController(t)
			app, mockAdapter, _ := newTestApp(t, ctrl, tt.args...)

			mockAdapter.EXPECT().Token().Return(signedToken(t))

			err := app.Run(context.Background())
			assert.ErrorIs(t, err, ErrMissingPermission)
			assert.Contains(t, err.Error(), tt.permission)
		})
	}
}

func TestRun_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, out := newTestApp(t, ctrl, "create",
		`{"title":"latte","recipe":[{"color":"white","name":"milk","parts":3}]}`)

	raw := signedToken(t, models.PermissionPostDrinks)
	want := models.Drink{Title: "latte", Recipe: []models.Ingredient{{Color: "white", Name: "milk", Parts: 3}}}

	mockAdapter.EXPECT().Token().Return(raw)
	mockAdapter.EXPECT().SetToken(raw)
	mockAdapter.EXPECT().CreateDrink(gomock.Any(), want).DoAndReturn(
		func(_ context.Context, d models.Drink) (models.Drink, error) {
			d.ID = 9
			return d, nil
		},
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"id": 9`)
}

func TestRun_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, out := newTestApp(t, ctrl, "update", "3", `{"title":"flat white"}`)

	raw := signedToken(t, models.PermissionPatchDrinks)
	mockAdapter.EXPECT().Token().Return(raw)
	mockAdapter.EXPECT().SetToken(raw)
	mockAdapter.EXPECT().UpdateDrink(gomock.Any(), int64(3), models.DrinkPatch{Title: "flat white"}).
		Return(models.Drink{ID: 3, Title: "flat white"}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "flat white")
}

func TestRun_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, mockAdapter, out := newTestApp(t, ctrl, "delete", "4")

	raw := signedToken(t, models.PermissionDeleteDrinks)
	mockAdapter.EXPECT().Token().Return(raw)
	mockAdapter.EXPECT().SetToken(raw)
	mockAdapter.EXPECT().DeleteDrink(gomock.Any(), int64(4)).Return(int64(4), nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "deleted drink 4\n", out.String())
}

func TestRun_BadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"create without json", []string{"create"}, ErrMissingArguments},
		{"update without json", []string{"update", "1"}, ErrMissingArguments},
		{"delete without id", []string{"delete"}, ErrMissingArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			app, _, _ := newTestApp(t, ctrl, tt.args...)

			assert.ErrorIs(t, app.Run(context.Background()), tt.wantErr)
		})
	}
}

func TestRun_MalformedOperands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		permission string
	}{
		{"create bad json", []string{"create", "{"}, models.PermissionPostDrinks},
		{"update bad id", []string{"update", "x", `{"title":"y"}`}, models.PermissionPatchDrinks},
		{"update bad json", []string{"update", "1", "{"}, models.PermissionPatchDrinks},
		{"delete bad id", []string{"delete", "x"}, models.PermissionDeleteDrinks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			app, mockAdapter, _ := newTestApp(t, ctrl, tt.args...)

			raw := signedToken(t, tt.permission)
			mockAdapter.EXPECT().Token().Return(raw)
			mockAdapter.EXPECT().SetToken(raw)

			assert.Error(t, app.Run(context.Background()))
		})
	}
}
