package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/voyagent/voyagent/internal/utils"
	"github.com/voyagent/voyagent/providers/ai"
	"github.com/voyagent/voyagent/providers/observability"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"

	// defaultTemperature keeps sampling close to deterministic so the model
	// sticks to the Thought/Action protocol.
	defaultTemperature = 0.1
)

// Config holds the settings required to construct a [Client]. APIKey and
// Model are required; BaseURL defaults to the public OpenAI endpoint and can
// point at any OpenAI-compatible service (DeepSeek, Ollama, OpenRouter, ...).
type Config struct {
	APIKey  string
	Model   string
	BaseURL string

	// HTTPClient overrides the HTTP client used for requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: API key is required")
	}
	if c.Model == "" {
		return fmt.Errorf("openai: model is required")
	}
	return nil
}

// Client is a model gateway for OpenAI-compatible chat completion APIs. It
// implements [ai.Generator] with a single synchronous, non-streaming call
// that returns the fully materialized model output.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a gateway client from cfg, failing fast on missing required
// configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  httpClient,
	}, nil
}

// Ensure Client implements ai.Generator at compile time.
var _ ai.Generator = (*Client)(nil)

// Generate implements [ai.Generator]. It sends the system instructions and
// the prompt as a two-message conversation and returns the assistant text of
// the first choice.
func (c *Client) Generate(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent("llm.request",
			observability.String(observability.AttrLLMModel, c.model),
			observability.String(observability.AttrLLMEndpoint, c.baseURL+chatCompletionsEndpoint),
			observability.Int(observability.AttrLLMPromptLength, len(prompt)),
		)
	}

	request := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: defaultTemperature,
		Stream:      false,
	}

	httpResponse, response, err := utils.DoPostSync[chatCompletionResponse](ctx, c.client, c.baseURL+chatCompletionsEndpoint, c.apiKey, request)
	if err != nil {
		return "", err
	}
	if response == nil {
		return "", fmt.Errorf("empty response from chat completions API: %s", httpResponse.Status)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completions response")
	}

	output := response.Choices[0].Message.Content

	if span != nil {
		span.AddEvent("llm.response",
			observability.String(observability.AttrLLMModel, response.Model),
			observability.Int(observability.AttrLLMOutputLength, len(output)),
		)
	}

	return output, nil
}
