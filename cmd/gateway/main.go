package main

import (
	"fmt"
	"log"
	"time"

	"layout-studio/internal/common/config"
	"layout-studio/internal/common/middleware"
	"layout-studio/internal/gateway/handlers"
	"layout-studio/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Layout Studio Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger("gateway"))
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(map[string]handlers.Check{
		"editor": handlers.Upstream(cfg.EditorURL),
		"assets": handlers.Upstream(cfg.AssetsURL),
	}))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Docs
	// ============================================================

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec(cfg.OpenAPIPath))

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	mount(app, cfg.EditorURL, cfg.AssetsURL)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Layout Studio Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying /api/v1/editor to %s, assets to %s", cfg.EditorURL, cfg.AssetsURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// mount registers the proxied API on app.
func mount(app *fiber.App, editorURL, assetsURL string) {
	api := app.Group("/api/v1")
	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Layout Studio API v1",
			"status":  "ok",
		})
	})

	// Editor Service
	api.All("/editor/*", proxy.Prefix(editorURL, "/api/v1/editor"))

	// Assets Service
	app.All("/api/fonts", proxy.Prefix(assetsURL, ""))
	app.All("/api/ascii", proxy.Prefix(assetsURL, ""))
	app.All("/api/ascii/*", proxy.Prefix(assetsURL, ""))
	app.Get("/fonts/*", proxy.Prefix(assetsURL, ""))
}
