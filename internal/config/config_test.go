package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eargollo/plotify/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/school.db\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/school.db" {
		t.Errorf("db_path: got %q", cfg.DBPath)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default http_addr, got %q", cfg.HTTPAddr)
	}
	if cfg.HealthSchedule == "" {
		t.Error("expected default health_schedule to be set")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "plotify.db" {
		t.Errorf("db_path: got %q, want default", cfg.DBPath)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level: got %q", cfg.LogLevel)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := config.Load(writeConfig(t, "scan_paths: [/tmp]\n"))
	if err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PLOTIFY_DB_PATH", "/env/plotify.db")
	t.Setenv("PLOTIFY_HTTP_ADDR", ":9090")

	cfg, err := config.Load(writeConfig(t, "db_path: /file/plotify.db\nhttp_addr: \":7070\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/env/plotify.db" {
		t.Errorf("db_path: got %q", cfg.DBPath)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("http_addr: got %q", cfg.HTTPAddr)
	}
}
