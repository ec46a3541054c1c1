package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string   `yaml:"port"`
	Environment  string   `yaml:"env"`
	ReadTimeout  int      `yaml:"read_timeout"`
	WriteTimeout int      `yaml:"write_timeout"`
	DBPath       string   `yaml:"db_path"`
	FontsDir     string   `yaml:"fonts_dir"`
	ASCIIDir     string   `yaml:"ascii_dir"`
	EditorURL    string   `yaml:"editor_url"`
	AssetsURL    string   `yaml:"assets_url"`
	CORSOrigins  []string `yaml:"cors_origins"`
	StageMarkup  string   `yaml:"stage_markup"`
	OpenAPIPath  string   `yaml:"openapi_path"`
	Panels       Panels   `yaml:"panels"`
}

// Panels задаёт границы ширины боковых панелей редактора (px).
type Panels struct {
	LeftMin      int `yaml:"left_min"`
	LeftMax      int `yaml:"left_max"`
	LeftDefault  int `yaml:"left_default"`
	RightMin     int `yaml:"right_min"`
	RightMax     int `yaml:"right_max"`
	RightDefault int `yaml:"right_default"`
}

func defaults() *Config {
	return &Config{
		Port:         "3000",
		Environment:  "development",
		ReadTimeout:  10,
		WriteTimeout: 10,
		DBPath:       "data/db/editor.db",
		FontsDir:     "public/fonts",
		ASCIIDir:     "public/ascii",
		EditorURL:    "http://localhost:3001",
		AssetsURL:    "http://localhost:3002",
		CORSOrigins:  []string{"*"},
		OpenAPIPath:  "docs/layout-studio.openapi.yaml",
		Panels: Panels{
			LeftMin: 180, LeftMax: 480, LeftDefault: 260,
			RightMin: 220, RightMax: 560, RightDefault: 320,
		},
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем YAML-файл из
// CONFIG_FILE (если задан), затем переменные окружения.
func Load() *Config {
	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			log.Printf("[CONFIG] %v", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENV", cfg.Environment)
	cfg.ReadTimeout = getEnvAsInt("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.DBPath = getEnv("EDITOR_DB_PATH", cfg.DBPath)
	cfg.FontsDir = getEnv("FONTS_DIR", cfg.FontsDir)
	cfg.ASCIIDir = getEnv("ASCII_DIR", cfg.ASCIIDir)
	cfg.EditorURL = getEnv("EDITOR_URL", cfg.EditorURL)
	cfg.AssetsURL = getEnv("ASSETS_URL", cfg.AssetsURL)
	cfg.StageMarkup = getEnv("STAGE_MARKUP", cfg.StageMarkup)
	cfg.OpenAPIPath = getEnv("OPENAPI_PATH", cfg.OpenAPIPath)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	cfg.Panels.normalize()
	return cfg
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// normalize чинит перепутанные границы и выводит default в диапазон.
func (p *Panels) normalize() {
	fix := func(min, max, def *int) {
		if *min > *max {
			*min, *max = *max, *min
		}
		if *def < *min {
			*def = *min
		}
		if *def > *max {
			*def = *max
		}
	}
	fix(&p.LeftMin, &p.LeftMax, &p.LeftDefault)
	fix(&p.RightMin, &p.RightMax, &p.RightDefault)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
