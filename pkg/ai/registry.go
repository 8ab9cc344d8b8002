package ai

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"solar_cli/pkg/config"
)

// ProviderType represents a supported LLM provider.
type ProviderType string

const (
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOpenAI     ProviderType = "openai"
	ProviderGoogle     ProviderType = "google"
)

// ProviderConfig holds configuration for creating a provider.
type ProviderConfig struct {
	Type   ProviderType
	Config config.Config
}

// ProviderFactory is a function that creates a Provider from config.
type ProviderFactory func(cfg ProviderConfig) (Provider, error)

// ProviderInfo describes a registered provider.
type ProviderInfo struct {
	Type        ProviderType
	Name        string
	Description string
	KeyEnv      string // environment variable holding the credential
}

// Registry manages provider factories and instantiation.
type Registry struct {
	mu        sync.RWMutex
	factories map[ProviderType]ProviderFactory
	info      map[ProviderType]ProviderInfo
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[ProviderType]ProviderFactory),
		info:      make(map[ProviderType]ProviderInfo),
	}
}

// Register adds a provider factory to the registry.
func (r *Registry) Register(info ProviderInfo, factory ProviderFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[info.Type] = factory
	r.info[info.Type] = info
}

// GetProvider creates a provider instance by type. A missing credential
// error names the environment variable the provider reads its key from.
func (r *Registry) GetProvider(cfg ProviderConfig) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[cfg.Type]
	r.mu.RUnlock()

	if !ok {
		var types []string
		for _, info := range r.ListProviders() {
			types = append(types, string(info.Type))
		}
		return nil, fmt.Errorf("unknown provider type: %s (available: %s)", cfg.Type, strings.Join(types, ", "))
	}

	provider, err := factory(cfg)
	if err != nil && errors.Is(err, ErrMissingCredential) {
		if info, ok := r.GetProviderInfo(cfg.Type); ok && info.KeyEnv != "" {
			return nil, fmt.Errorf("%w (set %s)", err, info.KeyEnv)
		}
	}
	return provider, err
}

// ListProviders returns information about all registered providers, sorted by type.
func (r *Registry) ListProviders() []ProviderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]ProviderInfo, 0, len(r.info))
	for _, info := range r.info {
		providers = append(providers, info)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].Type < providers[j].Type })
	return providers
}

// GetProviderInfo returns information about a specific provider.
func (r *Registry) GetProviderInfo(providerType ProviderType) (ProviderInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.info[providerType]
	return info, ok
}

// DefaultRegistry is the global provider registry.
var DefaultRegistry = NewRegistry()

// RegisterProvider registers a provider with the default registry.
func RegisterProvider(info ProviderInfo, factory ProviderFactory) {
	DefaultRegistry.Register(info, factory)
}

// GetProviderFromConfig creates the provider selected by cfg.LLMProvider
// from the default registry.
func GetProviderFromConfig(cfg config.Config) (Provider, error) {
	return DefaultRegistry.GetProvider(ProviderConfig{
		Type:   ProviderType(cfg.LLMProvider),
		Config: cfg,
	})
}
