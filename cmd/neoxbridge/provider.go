package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/anthropic"
	"github.com/fwojciec/neoxbridge/config"
	"github.com/fwojciec/neoxbridge/gemini"
	"github.com/fwojciec/neoxbridge/openai"
)

// resolveCompleter constructs the configured language model client and
// returns it with the provider name shown in the session status.
func resolveCompleter(ctx context.Context, c config.LLM) (neoxbridge.Completer, string, error) {
	if c.APIKey == "" {
		return nil, "", fmt.Errorf("%w: no API key for provider %s", config.ErrIncomplete, c.Provider)
	}
	switch c.Provider {
	case config.ProviderOpenAI:
		opts := []openai.Option{openai.WithDefaults(c.MaxTokens, c.Temperature)}
		if c.Model != "" {
			opts = append(opts, openai.WithModel(c.Model))
		}
		return openai.New(c.APIKey, opts...), "OpenAI", nil
	case config.ProviderAnthropic:
		var opts []anthropic.Option
		if c.Model != "" {
			opts = append(opts, anthropic.WithModel(c.Model))
		}
		return anthropic.New(c.APIKey, opts...), "Anthropic", nil
	case config.ProviderGemini:
		var opts []gemini.Option
		if c.Model != "" {
			opts = append(opts, gemini.WithModel(c.Model))
		}
		client, err := gemini.New(ctx, c.APIKey, opts...)
		if err != nil {
			return nil, "", fmt.Errorf("gemini: %w", err)
		}
		return client, "Gemini", nil
	default:
		return nil, "", fmt.Errorf("unknown provider %q: must be openai, anthropic or gemini", c.Provider)
	}
}
