// ABOUTME: Anthropic Messages client used as an alternative completion provider
// ABOUTME: Returns the concatenated text blocks of a single non-streaming reply
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/harper/vibe-memory/internal/util"
)

// DefaultAnthropicModel is used when no completion model is configured
const DefaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicConfig holds configuration for the Anthropic client
type AnthropicConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxTokens  int64
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// AnthropicClient completes prompts through the Messages API
type AnthropicClient struct {
	client     anthropic.Client
	model      string
	maxTokens  int64
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewAnthropicClient creates a client; retries are handled here, not by the SDK
func NewAnthropicClient(cfg AnthropicConfig) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	c := &AnthropicClient{
		client:     anthropic.NewClient(opts...),
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
	if c.model == "" {
		c.model = DefaultAnthropicModel
	}
	if c.maxTokens <= 0 {
		c.maxTokens = 200
	}
	if c.timeout <= 0 {
		c.timeout = 30 * time.Second
	}
	return c, nil
}

// Complete implements the completion capability
func (c *AnthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	reply, err := util.Retry(ctx, c.maxRetries, c.retryDelay, func(ctx context.Context) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(c.model),
			MaxTokens: c.maxTokens,
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
			},
		})
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		for _, block := range resp.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		if sb.Len() == 0 {
			return "", fmt.Errorf("no text in response")
		}
		return sb.String(), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete: %w", err)
	}
	return reply, nil
}
