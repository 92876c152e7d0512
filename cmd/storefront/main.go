package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ziadsupplies/storefront/internal/catalog"
	"github.com/ziadsupplies/storefront/internal/config"
	"github.com/ziadsupplies/storefront/internal/db"
	"github.com/ziadsupplies/storefront/internal/mail"
	"github.com/ziadsupplies/storefront/internal/transport"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "storefront").Logger()

	log.Info().Msg("Storefront starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	dbConn, err := db.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer dbConn.Close()

	// Bring persisted categories/products in line with the shipped catalog
	// definition before taking traffic.
	catalogRepo := catalog.NewRepository(dbConn)
	if err := catalogRepo.Reconcile(context.Background(), catalog.Default()); err != nil {
		log.Fatal().Err(err).Msg("Failed to reconcile catalog")
	}

	notifier := mail.NewNotifier(cfg.SMTP)
	router := transport.NewRouter(dbConn, notifier)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
