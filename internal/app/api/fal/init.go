package fal

import (
	"fmt"

	"media2text/internal/app/api/provider"
)

func init() {
	provider.Register(ProviderName, func(cfg provider.Config) (provider.Provider, error) {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("fal provider requires an API key (set FAL_KEY)")
		}
		return New(Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}), nil
	})
}
