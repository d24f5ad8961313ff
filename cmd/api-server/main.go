package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shubham-automation/github-action-demo/internal/config"
	"github.com/shubham-automation/github-action-demo/internal/deps"
	"github.com/shubham-automation/github-action-demo/internal/server"
)

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := server.New(deps.ServerDeps{
		Features:           cfg.Features,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	log.Info().Bool("customer_b_feature", cfg.Features.CustomerB).Msg("features loaded")

	addr := ":" + cfg.Port
	onListen := func(a net.Addr) {
		log.Info().Str("addr", a.String()).Msgf("App listening at http://localhost:%s", cfg.Port)
	}
	if err := server.StartHTTP(ctx, addr, api.Router(), onListen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
}

func setupLogging(cfg config.Config) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
