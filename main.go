package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/raine/resale-price-api/config"
	"github.com/raine/resale-price-api/internal/llm"
	"github.com/raine/resale-price-api/internal/pricing"
	"github.com/raine/resale-price-api/internal/server"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg := config.Load()

	// Cancel on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var insights llm.InsightProvider
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, AI insights will be unavailable")
	} else {
		provider, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize gemini insight provider")
		}
		insights = provider
		log.Info().Msg("gemini insight provider initialized")
	}

	productTypes := make([]string, 0, len(pricing.Catalog))
	for _, cat := range pricing.Catalog {
		productTypes = append(productTypes, cat.Key)
	}
	log.Info().
		Str("port", cfg.Port).
		Bool("apiConfigured", insights != nil).
		Strs("productTypes", productTypes).
		Msg("starting price prediction server")

	app := server.New(server.Config{
		Insights:       insights,
		InsightTimeout: cfg.InsightTimeout,
		TemplateDir:    "./web/templates",
		StaticDir:      "./web/static",
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.Listen(":" + cfg.Port)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}
