package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.Port != "3000" || cfg.EditorURL != "http://localhost:3001" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Panels.LeftDefault != 260 || cfg.Panels.RightMax != 560 {
		t.Errorf("panels = %+v", cfg.Panels)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
port: "4000"
db_path: /tmp/layout.db
panels:
  left_min: 500
  left_max: 200
  left_default: 100
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "5000")
	t.Setenv("READ_TIMEOUT", "nope")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("env should win over file, port = %s", cfg.Port)
	}
	if cfg.DBPath != "/tmp/layout.db" {
		t.Errorf("db path = %s", cfg.DBPath)
	}
	if cfg.ReadTimeout != 10 {
		t.Errorf("unparsable env should keep the default, got %d", cfg.ReadTimeout)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("origins = %v", cfg.CORSOrigins)
	}
	p := cfg.Panels
	if p.LeftMin != 200 || p.LeftMax != 500 || p.LeftDefault != 200 {
		t.Errorf("left bounds not normalised: %+v", p)
	}
	if p.RightDefault != 320 {
		t.Errorf("right panel lost its default: %+v", p)
	}
}

func TestMissingConfigFileKeepsDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PORT", "")
	if cfg := Load(); cfg.Port != "3000" {
		t.Errorf("port = %s", cfg.Port)
	}
}
