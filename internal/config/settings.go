package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/handiism/vidscribe/internal/locale"
	"github.com/handiism/vidscribe/internal/model"
	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvBaseURL         = "VIDSCRIBE_BASE_URL"
	EnvLanguage        = "VIDSCRIBE_LANG"
	EnvDownloadVariant = "VIDSCRIBE_DOWNLOAD_VARIANT"
	EnvRequestTimeout  = "VIDSCRIBE_REQUEST_TIMEOUT"
)

// Settings holds all configuration options.
type Settings struct {
	// Backend settings
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"` // 0 disables the timeout

	// Dispatcher settings
	DownloadVariant      string `json:"download_variant"` // options, legacy
	MaxConcurrentLookups int    `json:"max_concurrent_lookups"`

	// UI settings
	Language         string `json:"language"` // zh, en
	ThumbnailPreview bool   `json:"thumbnail_preview"`
	ThumbnailWidth   int    `json:"thumbnail_width"`
	Verbose          bool   `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:               "http://127.0.0.1:8000",
		RequestTimeoutSeconds: 0,

		DownloadVariant:      "options",
		MaxConcurrentLookups: 4,

		Language:         "zh",
		ThumbnailPreview: true,
		ThumbnailWidth:   32,
		Verbose:          false,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vidscribe.json"
	}
	return filepath.Join(dir, "vidscribe", "config.json")
}

// Load reads settings from a JSON file.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Variables that are already set win. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// ApplyEnv overrides settings from VIDSCRIBE_* environment variables.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		s.Language = v
	}
	if v := os.Getenv(EnvDownloadVariant); v != "" {
		s.DownloadVariant = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.RequestTimeoutSeconds = n
		}
	}
}

// RequestTimeout converts RequestTimeoutSeconds to a duration.
func (s *Settings) RequestTimeout() time.Duration {
	if s.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Variant returns the configured download variant.
func (s *Settings) Variant() model.DownloadVariant {
	return model.ParseDownloadVariant(s.DownloadVariant)
}

// Catalog returns the message catalog for the configured language.
func (s *Settings) Catalog() locale.Catalog {
	return locale.Lookup(s.Language)
}
