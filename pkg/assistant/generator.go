// Package assistant answers solar questions through an LLM provider and
// keeps the per-session conversation history.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"solar_cli/pkg/ai"
	"solar_cli/pkg/config"
)

// Options controls request shaping.
type Options struct {
	Model          string
	IncludeHistory bool
	MaxHistory     int
	Timeout        time.Duration
}

// OptionsFromConfig reads the generator options for the active provider.
func OptionsFromConfig(cfg config.Config) Options {
	timeout := cfg.OpenRouter.APITimeoutSeconds
	switch cfg.LLMProvider {
	case "openai":
		timeout = cfg.Providers.OpenAI.APITimeoutSeconds
	case "google":
		timeout = cfg.Providers.Google.APITimeoutSeconds
	}
	return Options{
		Model:          cfg.ActiveModel(),
		IncludeHistory: cfg.Chat.IncludeHistory,
		MaxHistory:     cfg.Chat.MaxHistoryMessages,
		Timeout:        time.Duration(timeout) * time.Second,
	}
}

// Generator turns a prompt into a Result. It never returns an error.
type Generator struct {
	provider ai.Provider
	opts     Options
}

// NewGenerator binds a provider with request options.
func NewGenerator(provider ai.Provider, opts Options) *Generator {
	return &Generator{provider: provider, opts: opts}
}

// Generate sends prompt with the solar system prompt. Prior turns are only
// sent when IncludeHistory is set.
func (g *Generator) Generate(ctx context.Context, prompt string, history []Turn) Result {
	prompt, truncated := ai.NormalizePrompt(prompt, ai.DefaultPromptBytes)
	if prompt == "" {
		return Failure(errors.New("please enter a question"))
	}
	if truncated {
		slog.Warn("chat_prompt_truncated", "max_bytes", ai.DefaultPromptBytes)
	}

	var prior []ai.Message
	if g.opts.IncludeHistory {
		prior = ai.HistoryWindow(Messages(history), g.opts.MaxHistory)
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	slog.Info("chat_request",
		"model", g.opts.Model,
		"prompt_bytes", len(prompt),
		"history_messages", len(prior),
	)
	start := time.Now()
	resp, err := ai.Complete(ctx, g.provider, ai.ChatRequest{
		Model:    g.opts.Model,
		Messages: ai.BuildSolarMessages(prompt, prior),
	})
	if err != nil {
		result := Failure(err)
		slog.Info("chat_result", "kind", result.Kind(), "elapsed_ms", time.Since(start).Milliseconds())
		return result
	}

	slog.Info("chat_result",
		"kind", "success",
		"reply_bytes", len(resp.Content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Success(resp.Content)
}
