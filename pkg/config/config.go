package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1"
	DefaultOpenAIURL     = "https://api.openai.com/v1"
	DefaultModel         = "meta-llama/llama-3.1-8b-instruct"
	DefaultGoogleModel   = "gemini-2.5-flash"
	DefaultHTTPReferer   = "http://localhost:8501"
	DefaultXTitle        = "Solar Industry Assistant"
)

// Environment variables read by ApplyEnvOverrides.
const (
	EnvProvider         = "SOLAR_LLM_PROVIDER"
	EnvOpenRouterKey    = "SOLAR_OPENROUTER_API_KEY"
	EnvOpenRouterKeyAlt = "OPENROUTER_API_KEY"
	EnvOpenAIKey        = "SOLAR_OPENAI_API_KEY"
	EnvGoogleKey        = "SOLAR_GOOGLE_API_KEY"
	EnvModel            = "SOLAR_MODEL"
	EnvLogLevel         = "SOLAR_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	LLMProvider string           `json:"llm_provider" toml:"llm_provider"`
	OpenRouter  OpenRouterConfig `json:"openrouter" toml:"openrouter"`
	Providers   ProvidersConfig  `json:"providers" toml:"providers"`
	Chat        ChatConfig       `json:"chat" toml:"chat"`
	ROI         ROIConfig        `json:"roi" toml:"roi"`
	LogLevel    string           `json:"log_level" toml:"log_level"`
	LogFormat   string           `json:"log_format" toml:"log_format"`
	LogFile     string           `json:"log_file" toml:"log_file"`
}

// OpenRouterConfig holds the OpenRouter API configuration. A nil
// Temperature and a zero MaxTokens are left out of requests so the model's
// own defaults apply.
type OpenRouterConfig struct {
	APIKey            string   `json:"api_key" toml:"api_key"`
	APIURL            string   `json:"api_url" toml:"api_url"`
	HTTPReferer       string   `json:"http_referer" toml:"http_referer"`
	XTitle            string   `json:"x_title" toml:"x_title"`
	Model             string   `json:"model" toml:"model"`
	Temperature       *float64 `json:"temperature,omitempty" toml:"temperature,omitempty"`
	MaxTokens         int      `json:"max_tokens,omitempty" toml:"max_tokens,omitempty"`
	APITimeoutSeconds int      `json:"api_timeout_seconds" toml:"api_timeout_seconds"`
}

// ProvidersConfig holds settings for the non-default providers.
type ProvidersConfig struct {
	OpenAI OpenAIConfig `json:"openai" toml:"openai"`
	Google GoogleConfig `json:"google" toml:"google"`
}

// OpenAIConfig configures direct OpenAI access.
type OpenAIConfig struct {
	APIKey            string   `json:"api_key" toml:"api_key"`
	APIURL            string   `json:"api_url" toml:"api_url"`
	Model             string   `json:"model" toml:"model"`
	Temperature       *float64 `json:"temperature,omitempty" toml:"temperature,omitempty"`
	MaxTokens         int      `json:"max_tokens,omitempty" toml:"max_tokens,omitempty"`
	APITimeoutSeconds int      `json:"api_timeout_seconds" toml:"api_timeout_seconds"`
}

// GoogleConfig configures the Gemini API.
type GoogleConfig struct {
	APIKey            string   `json:"api_key" toml:"api_key"`
	Model             string   `json:"model" toml:"model"`
	Temperature       *float64 `json:"temperature,omitempty" toml:"temperature,omitempty"`
	MaxTokens         int      `json:"max_tokens,omitempty" toml:"max_tokens,omitempty"`
	APITimeoutSeconds int      `json:"api_timeout_seconds" toml:"api_timeout_seconds"`
}

// ChatConfig controls what the assistant sends with each question.
type ChatConfig struct {
	// IncludeHistory sends prior turns with each prompt. Off by default:
	// every question is answered on its own.
	IncludeHistory     bool `json:"include_history" toml:"include_history"`
	MaxHistoryMessages int  `json:"max_history_messages" toml:"max_history_messages"`
}

// ROIConfig holds the values pre-filled in the calculator form.
type ROIConfig struct {
	SystemCost    float64 `json:"system_cost" toml:"system_cost"`
	AnnualSavings float64 `json:"annual_savings" toml:"annual_savings"`
	Incentives    float64 `json:"incentives" toml:"incentives"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		LLMProvider: "openrouter",
		OpenRouter: OpenRouterConfig{
			APIKey:            "",
			APIURL:            DefaultOpenRouterURL,
			HTTPReferer:       DefaultHTTPReferer,
			XTitle:            DefaultXTitle,
			Model:             DefaultModel,
			APITimeoutSeconds: 30,
		},
		Providers: ProvidersConfig{
			OpenAI: OpenAIConfig{
				APIURL:            DefaultOpenAIURL,
				Model:             "gpt-4o-mini",
				APITimeoutSeconds: 30,
			},
			Google: GoogleConfig{
				Model:             DefaultGoogleModel,
				APITimeoutSeconds: 30,
			},
		},
		Chat: ChatConfig{
			IncludeHistory:     false,
			MaxHistoryMessages: 10,
		},
		ROI: ROIConfig{
			SystemCost:    20000,
			AnnualSavings: 1500,
			Incentives:    5000,
		},
		LogLevel:  "info",
		LogFormat: "json",
		LogFile:   "",
	}
}

// Load loads configuration from the specified path.
// If the file doesn't exist, creates one with default values.
// Fields missing from the file keep their defaults.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if isTOML(configPath) {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	var data []byte
	if isTOML(configPath) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// ApplyEnvOverrides replaces config values with any set environment variables.
// Credentials are expected to arrive this way rather than from the file.
func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvProvider)); v != "" {
		c.LLMProvider = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvOpenRouterKey)); v != "" {
		c.OpenRouter.APIKey = v
	} else if v := strings.TrimSpace(os.Getenv(EnvOpenRouterKeyAlt)); v != "" {
		c.OpenRouter.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOpenAIKey)); v != "" {
		c.Providers.OpenAI.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGoogleKey)); v != "" {
		c.Providers.Google.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		switch c.LLMProvider {
		case "openai":
			c.Providers.OpenAI.Model = v
		case "google":
			c.Providers.Google.Model = v
		default:
			c.OpenRouter.Model = v
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// ActiveModel returns the model configured for the selected provider.
func (c Config) ActiveModel() string {
	switch c.LLMProvider {
	case "openai":
		return c.Providers.OpenAI.Model
	case "google":
		return c.Providers.Google.Model
	default:
		return c.OpenRouter.Model
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	switch c.LLMProvider {
	case "openrouter":
		if err := c.validateOpenRouter(); err != nil {
			return err
		}
	case "openai":
		p := c.Providers.OpenAI
		if strings.TrimSpace(p.APIKey) == "" {
			return fmt.Errorf("OpenAI API key is required (set %s)", EnvOpenAIKey)
		}
		if err := validateURL(p.APIURL); err != nil {
			return err
		}
		if err := validateModelParams(p.Model, p.Temperature, p.MaxTokens, p.APITimeoutSeconds); err != nil {
			return err
		}
	case "google":
		p := c.Providers.Google
		if strings.TrimSpace(p.APIKey) == "" {
			return fmt.Errorf("Google API key is required (set %s)", EnvGoogleKey)
		}
		if err := validateModelParams(p.Model, p.Temperature, p.MaxTokens, p.APITimeoutSeconds); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.LLMProvider)
	}

	if c.Chat.MaxHistoryMessages <= 0 {
		return fmt.Errorf("max_history_messages must be positive, got: %d", c.Chat.MaxHistoryMessages)
	}

	for name, v := range map[string]float64{
		"system_cost":    c.ROI.SystemCost,
		"annual_savings": c.ROI.AnnualSavings,
		"incentives":     c.ROI.Incentives,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("roi %s must be a non-negative number, got: %v", name, v)
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log_format: %s", c.LogFormat)
	}

	return nil
}

func (c Config) validateOpenRouter() error {
	if strings.TrimSpace(c.OpenRouter.APIKey) == "" {
		return fmt.Errorf("OpenRouter API key is required (set %s or %s)", EnvOpenRouterKey, EnvOpenRouterKeyAlt)
	}
	if err := validateURL(c.OpenRouter.APIURL); err != nil {
		return err
	}
	return validateModelParams(c.OpenRouter.Model, c.OpenRouter.Temperature, c.OpenRouter.MaxTokens, c.OpenRouter.APITimeoutSeconds)
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("api_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api_url: %s", raw)
	}
	return nil
}

func validateModelParams(model string, temperature *float64, maxTokens, timeoutSeconds int) error {
	if strings.TrimSpace(model) == "" {
		return fmt.Errorf("model is required")
	}
	if temperature != nil && (*temperature < 0 || *temperature > 2) {
		return fmt.Errorf("temperature must be between 0 and 2, got: %f", *temperature)
	}
	if maxTokens < 0 {
		return fmt.Errorf("max_tokens must not be negative, got: %d", maxTokens)
	}
	if timeoutSeconds <= 0 {
		return fmt.Errorf("api_timeout_seconds must be positive, got: %d", timeoutSeconds)
	}
	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".solar_cli/config.json"
	}
	return filepath.Join(homeDir, ".solar_cli", "config.json")
}
