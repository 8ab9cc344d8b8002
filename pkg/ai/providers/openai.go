package providers

import (
	"net/http"

	"solar_cli/pkg/ai"
	"solar_cli/pkg/config"
)

const (
	openAIDefaultModel   = "gpt-4o-mini"
	openAIDefaultTimeout = 30
)

func init() {
	ai.RegisterProvider(ai.ProviderInfo{
		Type:        ai.ProviderOpenAI,
		Name:        "OpenAI",
		Description: "Direct OpenAI API access",
		KeyEnv:      config.EnvOpenAIKey,
	}, NewOpenAIProvider)
}

// NewOpenAIProvider creates an OpenAI provider from config.
func NewOpenAIProvider(cfg ai.ProviderConfig) (ai.Provider, error) {
	return newOpenAIProviderWithHTTPClient(cfg.Config.Providers.OpenAI, nil)
}

func newOpenAIProviderWithHTTPClient(cfg config.OpenAIConfig, httpClient *http.Client) (*CompletionsProvider, error) {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = config.DefaultOpenAIURL
	}
	model := cfg.Model
	if model == "" {
		model = openAIDefaultModel
	}
	timeout := cfg.APITimeoutSeconds
	if timeout <= 0 {
		timeout = openAIDefaultTimeout
	}

	return newCompletionsProvider(completionsSettings{
		Name:           "openai",
		APIKey:         cfg.APIKey,
		APIURL:         apiURL,
		Model:          model,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
		TimeoutSeconds: timeout,
	}, httpClient)
}
