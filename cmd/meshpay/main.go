package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/meshpay/meshpay-client/internal/adapters/api"
	"github.com/meshpay/meshpay-client/internal/adapters/session"
	"github.com/meshpay/meshpay-client/internal/adapters/term"
	"github.com/meshpay/meshpay-client/internal/config"
	"github.com/meshpay/meshpay-client/internal/usecase"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func main() {
	_ = godotenv.Load() // optional .env, real env wins
	cfg := config.Load()

	// Adapters (infrastructure)
	gateway := api.NewClient(cfg.BaseURL)
	store := session.NewFileStore(cfg.SessionPath)

	// Application (navigation + page controllers)
	app := usecase.NewApp(gateway, store, cfg.PollInterval)
	ui := term.New(app, os.Stdin, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-stop
		logger.Info().Msg("Shutting down...")
		cancel()
	}()

	if err := ui.Run(ctx); err != nil && err != context.Canceled {
		logger.Fatal().Err(err).Msg("ui exited")
	}
}
