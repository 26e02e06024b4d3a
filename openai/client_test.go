package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatReply = `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"NEO is the governance token."}}]}`

func newServer(t *testing.T, status int, reply string, captured *[]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			*captured, _ = io.ReadAll(r.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := newServer(t, http.StatusOK, chatReply, &captured)
	client := openai.New("test-key", openai.WithBaseURL(srv.URL), openai.WithMaxRetries(0))

	got, err := client.Complete(context.Background(), neoxbridge.CompletionRequest{
		SystemPrompt: "You are NeoXBridge.",
		Prompt:       "what is neo?",
		MaxTokens:    300,
		Temperature:  neoxbridge.Float64(0.7),
	})
	require.NoError(t, err)
	assert.Equal(t, "NEO is the governance token.", got)

	var body struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.Equal(t, "gpt-4o-mini", body.Model)
	assert.Equal(t, 300, body.MaxTokens)
	assert.InDelta(t, 0.7, body.Temperature, 1e-9)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "You are NeoXBridge.", body.Messages[0].Content)
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.Equal(t, "what is neo?", body.Messages[1].Content)
}

func TestClient_ClientDefaults(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := newServer(t, http.StatusOK, chatReply, &captured)
	client := openai.New("test-key",
		openai.WithBaseURL(srv.URL),
		openai.WithMaxRetries(0),
		openai.WithModel("gpt-4o"),
		openai.WithDefaults(2000, 0.2),
	)

	_, err := client.Complete(context.Background(), neoxbridge.CompletionRequest{Prompt: "hi"})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.Equal(t, "gpt-4o", body["model"])
	assert.Equal(t, float64(2000), body["max_tokens"])
	assert.Equal(t, 0.2, body["temperature"])
	msgs := body["messages"].([]any)
	assert.Len(t, msgs, 1)
}

func TestClient_EmptyChoices(t *testing.T) {
	t.Parallel()
	srv := newServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`, nil)
	client := openai.New("test-key", openai.WithBaseURL(srv.URL), openai.WithMaxRetries(0))

	_, err := client.Complete(context.Background(), neoxbridge.CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, openai.ErrEmptyResponse)
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()
	srv := newServer(t, http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`, nil)
	client := openai.New("test-key", openai.WithBaseURL(srv.URL), openai.WithMaxRetries(0))

	_, err := client.Complete(context.Background(), neoxbridge.CompletionRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_ValidationError(t *testing.T) {
	t.Parallel()
	client := openai.New("test-key", openai.WithBaseURL("http://127.0.0.1:0"))
	_, err := client.Complete(context.Background(), neoxbridge.CompletionRequest{
		Prompt:      "hi",
		Temperature: neoxbridge.Float64(3),
	})
	assert.ErrorIs(t, err, neoxbridge.ErrValidation)
}
