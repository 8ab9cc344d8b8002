package providers

import (
	"net/http"

	"solar_cli/pkg/ai"
	"solar_cli/pkg/config"
)

func init() {
	ai.RegisterProvider(ai.ProviderInfo{
		Type:        ai.ProviderOpenRouter,
		Name:        "OpenRouter",
		Description: "Hosted open models through the OpenRouter API",
		KeyEnv:      config.EnvOpenRouterKey,
	}, NewOpenRouterProvider)
}

// NewOpenRouterProvider creates the default provider from config.
func NewOpenRouterProvider(cfg ai.ProviderConfig) (ai.Provider, error) {
	return newOpenRouterProviderWithHTTPClient(cfg.Config.OpenRouter, nil)
}

func newOpenRouterProviderWithHTTPClient(cfg config.OpenRouterConfig, httpClient *http.Client) (*CompletionsProvider, error) {
	return newCompletionsProvider(completionsSettings{
		Name:           "openrouter",
		APIKey:         cfg.APIKey,
		APIURL:         cfg.APIURL,
		Model:          cfg.Model,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
		TimeoutSeconds: cfg.APITimeoutSeconds,
		Headers: map[string]string{
			"HTTP-Referer":        cfg.HTTPReferer,
			"OpenRouter-Referrer": cfg.HTTPReferer,
			"X-Title":             cfg.XTitle,
		},
	}, httpClient)
}
