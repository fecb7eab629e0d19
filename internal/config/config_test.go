package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Host != "localhost" || cfg.HTTP.Port != 3000 {
		t.Fatalf("unexpected listen address %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeout != 10*time.Second || cfg.HTTP.IdleTimeout != time.Minute {
		t.Fatalf("unexpected timeouts %+v", cfg.HTTP)
	}
	if cfg.Storage.Driver != StorageMemory || cfg.Listing.PageSize != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.Level())
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	yaml := "log_level: debug\nhttp:\n  port: 8080\nstorage:\n  driver: sqlite\n  path: " + filepath.Join(dir, "x.db") + "\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("DPM_PAGE_SIZE", "15")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Port != 8080 || cfg.Storage.Driver != StorageSQLite || cfg.Listing.PageSize != 15 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DPM_PORT", "4000")

	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Port != 4000 {
		t.Fatalf("expected port from env, got %d", cfg.HTTP.Port)
	}
}

func TestLoad_UnknownStorage(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DPM_STORAGE", "postgres")

	if _, err := Load(""); !errors.Is(err, ErrUnknownStorage) {
		t.Fatalf("expected ErrUnknownStorage, got %v", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DPM_HOST=0.0.0.0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// godotenv sets the variable for the whole process
	t.Setenv("DPM_HOST", "")
	os.Unsetenv("DPM_HOST")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Host != "0.0.0.0" {
		t.Fatalf("expected host from .env, got %q", cfg.HTTP.Host)
	}
}
