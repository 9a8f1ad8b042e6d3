package groq

import (
	"fmt"

	"media2text/internal/app/api/provider"
)

func init() {
	provider.Register(ProviderName, func(cfg provider.Config) (provider.Provider, error) {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("groq provider requires an API key (set GROQ_API_KEY)")
		}
		return New(cfg), nil
	})
}
