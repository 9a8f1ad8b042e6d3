package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// APIKeys holds the speech-to-text API keys loaded from environment.
type APIKeys struct {
	OpenAI string
	Groq   string
	Fal    string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error since keys may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// A key that is set but malformed is an error; an unset key is not.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Groq:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		Fal:    strings.TrimSpace(os.Getenv("FAL_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if apiKeys.Groq != "" {
		if !strings.HasPrefix(apiKeys.Groq, "gsk_") {
			return nil, fmt.Errorf("invalid GROQ_API_KEY format: must start with 'gsk_'")
		}
		if len(apiKeys.Groq) < 20 {
			return nil, fmt.Errorf("invalid GROQ_API_KEY format: too short")
		}
	}

	if apiKeys.Fal != "" && len(apiKeys.Fal) < 10 {
		return nil, fmt.Errorf("invalid FAL_KEY format: too short")
	}

	return apiKeys, nil
}

// KeyFor returns the API key for a provider name, empty when unset.
func (k *APIKeys) KeyFor(providerName string) string {
	switch providerName {
	case "openai":
		return k.OpenAI
	case "groq":
		return k.Groq
	case "fal":
		return k.Fal
	default:
		return ""
	}
}

// Available lists the provider names that have a key configured.
func (k *APIKeys) Available() []string {
	return lo.Filter([]string{"openai", "groq", "fal"}, func(name string, _ int) bool {
		return k.KeyFor(name) != ""
	})
}

// RequireKey validates that the named provider has a key configured.
func (k *APIKeys) RequireKey(providerName string) error {
	if k.KeyFor(providerName) == "" {
		envVar := map[string]string{
			"openai": "OPENAI_API_KEY",
			"groq":   "GROQ_API_KEY",
			"fal":    "FAL_KEY",
		}[providerName]
		if envVar == "" {
			return fmt.Errorf("unknown provider %q", providerName)
		}
		return fmt.Errorf("provider %q requires %s in environment or .env file", providerName, envVar)
	}
	return nil
}
