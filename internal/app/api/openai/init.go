package openai

import (
	"fmt"

	"media2text/internal/app/api/provider"
)

func init() {
	provider.Register(ProviderName, func(cfg provider.Config) (provider.Provider, error) {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key (set OPENAI_API_KEY)")
		}
		return New(cfg), nil
	})
}
