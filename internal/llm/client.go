// Package llm wraps the OpenAI chat completion API for the features that
// lean on a language model: AI recommendations, guide expansion and the
// market news briefing. Every call asks for a JSON object response.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"moneyharbor/internal/logger"
)

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("llm: api key not configured")

	// ErrEmptyResponse is returned when the model returns no content.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gpt-4o-mini"

// costPerMillionTokens is the blended price used for cost estimates, in USD.
const costPerMillionTokens = 0.50

// Config configures a Client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client issues chat completions. A Client built without an API key is
// valid but every call returns ErrNotConfigured.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	c := &Client{
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if cfg.APIKey == "" {
		return c
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	c.api = openai.NewClientWithConfig(apiCfg)
	return c
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c != nil && c.api != nil
}

// Model returns the model name used for completions.
func (c *Client) Model() string {
	return c.model
}

// EstimateCost converts a token count into an approximate USD cost.
func EstimateCost(tokens int) float64 {
	return float64(tokens) / 1_000_000 * costPerMillionTokens
}

type completion struct {
	system      string
	user        string
	temperature float32
	maxTokens   int
	task        string
}

// completeJSON runs a chat completion and decodes the JSON object reply into out.
// It returns the total tokens billed.
func (c *Client) completeJSON(ctx context.Context, req completion, out interface{}) (int, error) {
	if !c.Configured() {
		return 0, ErrNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: req.temperature,
		MaxTokens:   req.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.system},
			{Role: openai.ChatMessageRoleUser, Content: req.user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logger.Get().Warnw("LLM request failed", "task", req.task, "model", c.model, "error", err)
		return 0, fmt.Errorf("openai api error: %w", err)
	}

	logger.Get().Infow("LLM request completed",
		"task", req.task,
		"model", c.model,
		"tokens", resp.Usage.TotalTokens,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return resp.Usage.TotalTokens, ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return resp.Usage.TotalTokens, fmt.Errorf("failed to decode %s response: %w", req.task, err)
	}
	return resp.Usage.TotalTokens, nil
}
