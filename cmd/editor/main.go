package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"layout-studio/internal/common/config"
	"layout-studio/internal/common/middleware"
	"layout-studio/internal/editor/handlers"
	"layout-studio/internal/editor/service"
	health "layout-studio/internal/gateway/handlers"
	"layout-studio/internal/layout/anchors"
	"layout-studio/internal/layout/preset"
	"layout-studio/internal/storage"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Editor Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3001"
	}

	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := storage.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	stage := anchors.Default()
	if cfg.StageMarkup != "" {
		stage, err = loadStage(cfg.StageMarkup)
		if err != nil {
			log.Fatalf("load stage markup: %v", err)
		}
	}
	log.Printf("[EDITOR] %d decorative anchors", len(stage))

	editorHandler := handlers.NewEditorHandler(
		service.NewSessionManager(stage),
		preset.New(repo),
		service.NewPanels(repo, cfg.Panels),
		service.NewLayouts(repo),
	)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Layout Editor Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger("editor"))
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/ready", health.ReadinessProbe(map[string]health.Check{"sqlite": repo.Ping}))

	// ============================================================
	// Editor Routes
	// ============================================================

	editorHandler.Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Layout Editor Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadStage(path string) ([]anchors.Anchor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return anchors.Scan(f)
}
