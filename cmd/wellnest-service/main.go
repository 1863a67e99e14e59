package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wellnest/wellnest-server/internal/api"
	"github.com/wellnest/wellnest-server/internal/auth"
	"github.com/wellnest/wellnest-server/internal/config"
	"github.com/wellnest/wellnest-server/internal/factory"
	"github.com/wellnest/wellnest-server/internal/logger"
)

func main() {
	log := logger.New("wellnest-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Msg("Wellnest service starting…")

	// -------- Storage layer -----------------
	ctx := context.Background()
	st, closeStore, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}

	// -------- Router & Server --------------
	signer := auth.NewSigner([]byte(cfg.JWTSecret), cfg.TokenTTL())
	router := api.NewRouter(st, signer, cfg)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	if err := closeStore(ctxShutdown); err != nil {
		log.Warn().Err(err).Msg("Store close failed")
	}
	log.Info().Msg("Server exited")
}
