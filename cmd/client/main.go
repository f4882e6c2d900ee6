package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/coffee-shop-client/internal/adapter"
	"github.com/MKhiriev/coffee-shop-client/internal/client"
	"github.com/MKhiriev/coffee-shop-client/internal/config"
	"github.com/MKhiriev/coffee-shop-client/internal/environment"
	"github.com/MKhiriev/coffee-shop-client/internal/logger"
	"github.com/MKhiriev/coffee-shop-client/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("coffee-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("coffee-client", cfg.Log.FilePath)
	defer log.Close()
	logBuildInfo(log)

	env := environment.Get()

	drinksAdapter, err := adapter.NewHTTPDrinksAdapter(env, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create drinks adapter")
	}

	newWaiter := func() (client.CallbackWaiter, error) {
		s, err := server.NewCallbackServer(env, cfg.Auth, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	app, err := client.NewApp(env, cfg, drinksAdapter, newWaiter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		log.Error().Err(err).Msg("client run error")
		stop()
		log.Close()
		os.Exit(1)
	}
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
