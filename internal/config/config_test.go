package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATAFORGE_BIND_ADDR", "DATAFORGE_LOG_LEVEL", "DATAFORGE_PRESETS_DIR",
		"DATAFORGE_MAX_RECORDS", "DATAFORGE_DEFAULT_RECORDS", "DATAFORGE_WORKERS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.BindAddr != ":8080" {
		t.Errorf("unexpected bind addr: %s", cfg.BindAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.MaxRecords != 1000000 {
		t.Errorf("unexpected max records: %d", cfg.MaxRecords)
	}
	if cfg.DefaultRecords != 1000 {
		t.Errorf("unexpected default records: %d", cfg.DefaultRecords)
	}
	if cfg.Workers != 0 {
		t.Errorf("unexpected workers: %d", cfg.Workers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATAFORGE_BIND_ADDR", ":9999")
	t.Setenv("DATAFORGE_MAX_RECORDS", "500")
	t.Setenv("DATAFORGE_WORKERS", "8")

	cfg := Load()
	if cfg.BindAddr != ":9999" {
		t.Errorf("expected override, got %s", cfg.BindAddr)
	}
	if cfg.MaxRecords != 500 {
		t.Errorf("expected override, got %d", cfg.MaxRecords)
	}
	if cfg.Workers != 8 {
		t.Errorf("expected override, got %d", cfg.Workers)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DATAFORGE_MAX_RECORDS", "lots")

	cfg := Load()
	if cfg.MaxRecords != 1000000 {
		t.Errorf("expected default on invalid int, got %d", cfg.MaxRecords)
	}
}
