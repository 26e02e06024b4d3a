// Package openai implements [neoxbridge.Completer] on top of the official
// openai-go SDK's chat completions endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when neither the client nor the request names one.
const DefaultModel = "gpt-4o-mini"

// Interface compliance check.
var _ neoxbridge.Completer = (*Client)(nil)

// ErrEmptyResponse is returned when the API replies without content.
var ErrEmptyResponse = errors.New("openai: empty response")

// Client implements [neoxbridge.Completer] for OpenAI-compatible APIs.
type Client struct {
	client      openai.Client
	model       string
	maxTokens   int
	temperature *float64
}

type settings struct {
	baseURL     string
	httpClient  *http.Client
	maxRetries  int
	model       string
	maxTokens   int
	temperature *float64
}

// Option configures a [Client].
type Option func(*settings)

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(s *settings) { s.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) { s.httpClient = hc }
}

// WithMaxRetries sets how many times a failed request is retried.
func WithMaxRetries(n int) Option {
	return func(s *settings) { s.maxRetries = n }
}

// WithModel sets the model used when a request leaves Model empty.
func WithModel(model string) Option {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithDefaults sets the max tokens and temperature applied when a request
// leaves them unset.
func WithDefaults(maxTokens int, temperature float64) Option {
	return func(s *settings) {
		s.maxTokens = maxTokens
		s.temperature = neoxbridge.Float64(temperature)
	}
}

// New creates a new OpenAI [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	s := settings{model: DefaultModel, maxRetries: 2}
	for _, o := range opts {
		o(&s)
	}
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(s.maxRetries),
	}
	if s.baseURL != "" {
		base := s.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		reqOpts = append(reqOpts, option.WithBaseURL(base))
	}
	if s.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(s.httpClient))
	}
	return &Client{
		client:      openai.NewClient(reqOpts...),
		model:       s.model,
		maxTokens:   s.maxTokens,
		temperature: s.temperature,
	}
}

// Complete sends one system+user exchange and returns the first choice.
func (c *Client) Complete(ctx context.Context, req neoxbridge.CompletionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	completion, err := c.client.Chat.Completions.New(ctx, c.params(req))
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

func (c *Client) params(req neoxbridge.CompletionRequest) openai.ChatCompletionNewParams {
	model := req.Model
	if model == "" {
		model = c.model
	}
	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}
	temp := req.Temperature
	if temp == nil {
		temp = c.temperature
	}
	if temp != nil {
		params.Temperature = openai.Float(*temp)
	}
	return params
}
