package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig carries optional overrides for the transcription
// providers, loaded from providers.yaml next to the binary or under
// the data directory.
type ProvidersConfig struct {
	DefaultProvider string                    `yaml:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
	History         HistoryConfig             `yaml:"history,omitempty"`
}

// ProviderConfig represents overrides for a single provider.
type ProviderConfig struct {
	Model      string `yaml:"model,omitempty"`
	BaseURL    string `yaml:"base_url,omitempty"`
	TimeoutSec int    `yaml:"timeout_sec,omitempty"`
}

// HistoryConfig selects the transcript history backend.
type HistoryConfig struct {
	Backend     string `yaml:"backend,omitempty"`
	PostgresDSN string `yaml:"postgres_dsn,omitempty"`
}

// DefaultProvidersConfig returns the configuration used when no
// providers.yaml exists.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		DefaultProvider: "openai",
		Providers:       map[string]ProviderConfig{},
		History:         HistoryConfig{Backend: "sqlite"},
	}
}

// LoadProvidersConfig loads provider overrides from a YAML file. A
// missing file falls back to defaults; a malformed file is an error.
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultProvidersConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultProvidersConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if config.DefaultProvider == "" {
		config.DefaultProvider = "openai"
	}
	if config.History.Backend == "" {
		config.History.Backend = "sqlite"
	}
	if config.History.Backend == "postgres" && config.History.PostgresDSN == "" {
		return nil, fmt.Errorf("history backend %q requires postgres_dsn", config.History.Backend)
	}

	// Keys never live in the YAML file; ${VAR} references are resolved
	// from the environment instead.
	for name, pc := range config.Providers {
		pc.BaseURL = os.ExpandEnv(pc.BaseURL)
		config.Providers[name] = pc
	}

	return config, nil
}

// For returns the overrides for a provider name, zero-valued when the
// provider has no section in the file.
func (c *ProvidersConfig) For(providerName string) ProviderConfig {
	return c.Providers[providerName]
}

// Timeout converts the per-provider timeout to a duration, zero when
// unset so the provider applies its own default.
func (p ProviderConfig) Timeout() time.Duration {
	if p.TimeoutSec <= 0 {
		return 0
	}
	return time.Duration(p.TimeoutSec) * time.Second
}
