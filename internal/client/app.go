package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/coffee-shop-client/internal/adapter"
	"github.com/MKhiriev/coffee-shop-client/internal/auth"
	"github.com/MKhiriev/coffee-shop-client/internal/config"
	"github.com/MKhiriev/coffee-shop-client/internal/environment"
	"github.com/MKhiriev/coffee-shop-client/internal/logger"
	"github.com/MKhiriev/coffee-shop-client/models"
)

const usage = `usage: coffee-client [flags] <command> [args]

commands:
  env                   print the environment configuration
  login-url             print the Auth0 login URL
  login                 log in through the browser and print the access token
  drinks                list drinks
  drinks-detail         list drinks with full recipes
  create <json>         create a drink
  update <id> <json>    update a drink
  delete <id>           delete a drink`

var _ Client = (*App)(nil)

type App struct {
	env       environment.EnvironmentConfig
	cfg       *config.ClientConfig
	adapter   adapter.DrinksAdapter
	auth      *auth.Authenticator
	newWaiter WaiterFactory
	out       io.Writer

	logger *logger.Logger
}

// NewApp validates env and assembles the client runtime. It fails fast with
// [ErrInvalidEnvironment] when env is malformed.
func NewApp(
	env environment.EnvironmentConfig,
	cfg *config.ClientConfig,
	drinksAdapter adapter.DrinksAdapter,
	newWaiter WaiterFactory,
	out io.Writer,
	logger *logger.Logger,
) (*App, error) {
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvironment, err)
	}

	return &App{
		env:       env,
		cfg:       cfg,
		adapter:   drinksAdapter,
		auth:      auth.NewAuthenticator(env),
		newWaiter: newWaiter,
		out:       out,
		logger:    logger,
	}, nil
}

// Run executes the command named by the first positional argument.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Args) == 0 {
		_, err := fmt.Fprintln(a.out, usage)
		return err
	}

	command, args := a.cfg.Args[0], a.cfg.Args[1:]
	a.logger.Debug().Str("command", command).Str("mode", a.env.Mode()).Msg("running command")

	switch command {
	case "env":
		return a.printJSON(a.env)
	case "login-url":
		_, err := fmt.Fprintln(a.out, a.auth.LoginURL(""))
		return err
	case "login":
		return a.login(ctx)
	case "drinks":
		return a.listDrinks(ctx)
	case "drinks-detail":
		return a.listDrinkDetails(ctx)
	case "create":
		return a.createDrink(ctx, args)
	case "update":
		return a.updateDrink(ctx, args)
	case "delete":
		return a.deleteDrink(ctx, args)
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) login(ctx context.Context) error {
	waiter, err := a.newWaiter()
	if err != nil {
		return fmt.Errorf("create callback listener: %w", err)
	}

	if _, err = fmt.Fprintf(a.out, "Open this URL in a browser to log in:\n%s\n", a.auth.LoginURL("")); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Auth.LoginTimeout)
	defer cancel()

	raw, err := waiter.Wait(ctx)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	token, err := a.auth.ParseToken(raw)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.adapter.SetToken(token.String())
	a.logger.Info().Str("subject", token.Subject).Strs("permissions", token.Permissions).Msg("logged in")

	_, err = fmt.Fprintf(a.out, "Logged in as %s\nPermissions: %s\nexport COFFEE_AUTH_ACCESS_TOKEN=%s\n",
		token.Subject, strings.Join(token.Permissions, ", "), token.String())
	return err
}

func (a *App) listDrinks(ctx context.Context) error {
	drinks, err := a.adapter.ListDrinks(ctx)
	if err != nil {
		return fmt.Errorf("list drinks: %w", err)
	}
	return a.printJSON(drinks)
}

func (a *App) listDrinkDetails(ctx context.Context) error {
	if err := a.authorize(models.PermissionGetDrinksDetail); err != nil {
		return err
	}

	drinks, err := a.adapter.ListDrinkDetails(ctx)
	if err != nil {
		return fmt.Errorf("list drink details: %w", err)
	}
	return a.printJSON(drinks)
}

func (a *App) createDrink(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: create <json>", ErrMissingArguments)
	}
	if err := a.authorize(models.PermissionPostDrinks); err != nil {
		return err
	}

	var drink models.Drink
	if err := json.Unmarshal([]byte(args[0]), &drink); err != nil {
		return fmt.Errorf("decode drink: %w", err)
	}

	created, err := a.adapter.CreateDrink(ctx, drink)
	if err != nil {
		return fmt.Errorf("create drink: %w", err)
	}
	return a.printJSON(created)
}

func (a *App) updateDrink(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: update <id> <json>", ErrMissingArguments)
	}
	if err := a.authorize(models.PermissionPatchDrinks); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parse drink id: %w", err)
	}

	var patch models.DrinkPatch
	if err = json.Unmarshal([]byte(args[1]), &patch); err != nil {
		return fmt.Errorf("decode drink patch: %w", err)
	}

	updated, err := a.adapter.UpdateDrink(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("update drink: %w", err)
	}
	return a.printJSON(updated)
}

func (a *App) deleteDrink(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: delete <id>", ErrMissingArguments)
	}
	if err := a.authorize(models.PermissionDeleteDrinks); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parse drink id: %w", err)
	}

	deleted, err := a.adapter.DeleteDrink(ctx, id)
	if err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "deleted drink %d\n", deleted)
	return err
}

// authorize makes sure the adapter holds a token granting permission, loading
// the configured access token on first use.
func (a *App) authorize(permission string) error {
	raw := a.adapter.Token()
	if raw == "" {
		raw = a.cfg.Auth.AccessToken
	}
	if raw == "" {
		return ErrLoginRequired
	}

	token, err := a.auth.ParseToken(raw)
	if err != nil {
		return err
	}
	if !token.Can(permission) {
		return fmt.Errorf("%w: %s", ErrMissingPermission, permission)
	}

	a.adapter.SetToken(token.String())
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
