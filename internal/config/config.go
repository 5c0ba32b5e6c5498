/*
Package config handles loading, saving, and validating platepilot
configuration.

Configuration is stored in ~/.platepilot.json:

  {
    "vehicleApi": {
      "baseUrl": "https://v1.motorapi.dk",
      "authToken": "..."
    },
    "assistApi": {
      "baseUrl": "http://localhost:5000"
    },
    "ocr": {
      "binary": "tesseract",
      "languages": "eng"
    },
    "settings": {
      "timeoutSeconds": 10,
      "listenAddr": "127.0.0.1:8750",
      "storagePath": ""
    }
  }
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// Config is the root configuration structure.
type Config struct {
	// VehicleAPI configures the vehicle registry client.
	VehicleAPI VehicleAPIConfig `json:"vehicleApi"`

	// AssistAPI configures the assist backend client.
	AssistAPI AssistAPIConfig `json:"assistApi"`

	// OCR configures plate recognition.
	OCR OCRConfig `json:"ocr,omitempty"`

	// Settings contains global options.
	Settings Settings `json:"settings,omitempty"`
}

// VehicleAPIConfig configures the vehicle registry client.
type VehicleAPIConfig struct {
	// BaseURL is the registry endpoint (e.g., https://v1.motorapi.dk).
	BaseURL string `json:"baseUrl"`

	// AuthToken is sent as the X-AUTH-TOKEN header.
	AuthToken string `json:"authToken,omitempty"`
}

// AssistAPIConfig configures the assist backend client.
type AssistAPIConfig struct {
	// BaseURL is the assist backend endpoint.
	BaseURL string `json:"baseUrl"`
}

// OCRConfig configures plate recognition.
type OCRConfig struct {
	// Binary is the tesseract executable (default: "tesseract").
	Binary string `json:"binary,omitempty"`

	// Languages is the tesseract language list (default: "eng").
	Languages string `json:"languages,omitempty"`
}

// Settings contains global options.
type Settings struct {
	// TimeoutSeconds bounds every outgoing network request.
	TimeoutSeconds int `json:"timeoutSeconds,omitempty"`

	// ListenAddr is the serve-mode bind address.
	ListenAddr string `json:"listenAddr,omitempty"`

	// StoragePath overrides the default database location.
	StoragePath string `json:"storagePath,omitempty"`
}

// Default values applied by NewConfig and filled in on load.
const (
	DefaultVehicleAPIBaseURL = "https://v1.motorapi.dk"
	DefaultAssistAPIBaseURL  = "http://localhost:5000"
	DefaultTimeoutSeconds    = 10
	DefaultListenAddr        = "127.0.0.1:8750"
)

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	return &Config{
		VehicleAPI: VehicleAPIConfig{BaseURL: DefaultVehicleAPIBaseURL},
		AssistAPI:  AssistAPIConfig{BaseURL: DefaultAssistAPIBaseURL},
		OCR:        OCRConfig{Binary: "tesseract", Languages: "eng"},
		Settings: Settings{
			TimeoutSeconds: DefaultTimeoutSeconds,
			ListenAddr:     DefaultListenAddr,
		},
	}
}

// applyDefaults fills in zero-valued fields after a load.
func (c *Config) applyDefaults() {
	if c.VehicleAPI.BaseURL == "" {
		c.VehicleAPI.BaseURL = DefaultVehicleAPIBaseURL
	}
	if c.AssistAPI.BaseURL == "" {
		c.AssistAPI.BaseURL = DefaultAssistAPIBaseURL
	}
	if c.Settings.TimeoutSeconds <= 0 {
		c.Settings.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Settings.ListenAddr == "" {
		c.Settings.ListenAddr = DefaultListenAddr
	}
}

// DefaultConfigPath returns the path to ~/.platepilot.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".platepilot.json"), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{
				Path: path,
				Hint: "A default config is written on first run, or create one by hand",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{Path: path, Op: "read"}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Fix the JSON or delete the file to start fresh",
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrCreate loads the default config file, writing a fresh default config
// when none exists yet.
func LoadOrCreate() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		return cfg, nil
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	cfg = NewConfig()
	if err := Save(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if os.IsPermission(err) {
			return &PermissionError{Path: path, Op: "write"}
		}
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
