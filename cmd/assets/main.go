package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"layout-studio/internal/assets"
	"layout-studio/internal/common/config"
	"layout-studio/internal/common/middleware"
	health "layout-studio/internal/gateway/handlers"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
)

// ============================================================
// Assets Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	assetsHandler := assets.NewHandler(assets.NewLibrary(cfg.FontsDir, cfg.ASCIIDir))

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Assets Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger("assets"))
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/startup", health.StartupProbe)

	// ============================================================
	// Asset Routes
	// ============================================================

	assetsHandler.Register(app)
	app.Get("/fonts/*", static.New(cfg.FontsDir))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Assets Service on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Serving fonts from %s, ascii from %s", cfg.FontsDir, cfg.ASCIIDir)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
