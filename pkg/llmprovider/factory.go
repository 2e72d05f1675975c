package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"primering/config"
	"primering/pkg/gemini"
	"primering/pkg/log"
	"primering/pkg/openai"
)

// InitializeProviders builds the enabled providers in ascending priority.
// A provider that fails to initialize is logged and skipped.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			l.Warnf(ctx, "llmprovider.InitializeProviders: skip provider %s: %v", p.Name, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// NewManagerFromConfig initializes providers and wraps them in a Manager.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	mcfg := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if mcfg.RetryDelay, err = parseDuration(cfg.RetryDelay); err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	if mcfg.MaxTotalTimeout, err = parseDuration(cfg.MaxTotalTimeout); err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	return NewManager(providers, mcfg, l), nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	timeout, err := parseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("timeout: %w", err)
	}
	var httpClient *http.Client
	if timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case openai.FlavourOpenAI, openai.FlavourQwen, openai.FlavourDeepSeek, openai.FlavourLocal:
		client, err := openai.New(openai.Config{
			Flavour:    cfg.Name,
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewOpenAIAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
