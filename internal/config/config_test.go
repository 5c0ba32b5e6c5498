package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.VehicleAPI.BaseURL != DefaultVehicleAPIBaseURL {
		t.Errorf("unexpected vehicle API base URL %q", cfg.VehicleAPI.BaseURL)
	}
	if cfg.AssistAPI.BaseURL != DefaultAssistAPIBaseURL {
		t.Errorf("unexpected assist API base URL %q", cfg.AssistAPI.BaseURL)
	}
	if cfg.Settings.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("unexpected timeout %d", cfg.Settings.TimeoutSeconds)
	}
	if cfg.Settings.ListenAddr != DefaultListenAddr {
		t.Errorf("unexpected listen address %q", cfg.Settings.ListenAddr)
	}
	if cfg.OCR.Binary != "tesseract" || cfg.OCR.Languages != "eng" {
		t.Errorf("unexpected OCR defaults %+v", cfg.OCR)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Hint == "" {
		t.Error("expected a hint on the not-found error")
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)

	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidError, got %v", err)
	}
}

func TestLoadFrom_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"vehicleApi": {"authToken": "secret"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.VehicleAPI.AuthToken != "secret" {
		t.Errorf("explicit value lost: %q", cfg.VehicleAPI.AuthToken)
	}
	if cfg.VehicleAPI.BaseURL != DefaultVehicleAPIBaseURL {
		t.Errorf("default not applied: %q", cfg.VehicleAPI.BaseURL)
	}
	if cfg.Settings.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("default timeout not applied: %d", cfg.Settings.TimeoutSeconds)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := NewConfig()
	cfg.VehicleAPI.AuthToken = "secret"
	cfg.Settings.ListenAddr = "0.0.0.0:9000"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if loaded.VehicleAPI.AuthToken != "secret" || loaded.Settings.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}

	cfg.VehicleAPI.BaseURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for a bad base URL")
	}
}
