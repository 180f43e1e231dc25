// Package server exposes the price estimation pipeline over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/raine/resale-price-api/internal/llm"
)

const defaultInsightTimeout = 30 * time.Second

// Config carries the handler dependencies.
type Config struct {
	// Insights is nil when no API key is configured; predictions then carry
	// degraded insight text instead of failing.
	Insights       llm.InsightProvider
	InsightTimeout time.Duration
	TemplateDir    string
	StaticDir      string
}

// New builds the fiber app with all routes registered.
func New(cfg Config) *fiber.App {
	if cfg.InsightTimeout <= 0 {
		cfg.InsightTimeout = defaultInsightTimeout
	}

	engine := html.New(cfg.TemplateDir, ".html")

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			// Log the detail server-side, keep it out of the response body.
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled server error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	if cfg.StaticDir != "" {
		app.Static("/static", cfg.StaticDir)
	}

	h := &handler{
		insights:       cfg.Insights,
		insightTimeout: cfg.InsightTimeout,
	}

	app.Get("/", h.Index)
	app.Post("/api/predict", h.Predict)
	app.Get("/api/products", h.Products)
	app.Get("/api/health", h.Health)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	return app
}
