package neoxbridge

import (
	"context"
	"fmt"
)

// Completer is a strategy interface for LLM chat completion providers.
// It is used only for fallback classification and general conversation.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is a single-turn prompt. The provider uses its own
// defaults when fields are zero/nil.
type CompletionRequest struct {
	Model        string // model ID, provider-specific; empty = provider default
	SystemPrompt string
	Prompt       string
	MaxTokens    int      // 0 = provider default
	Temperature  *float64 // nil = provider default
}

// Validate checks universal constraints on CompletionRequest. Provider
// implementations may apply additional provider-specific validation.
func (r CompletionRequest) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt must not be empty: %w", ErrValidation)
	}
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", r.MaxTokens, ErrValidation)
	}
	return nil
}

// Float64 returns a pointer to v, for optional request fields.
func Float64(v float64) *float64 { return &v }
