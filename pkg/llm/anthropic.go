package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) Name() string {
	return c.modelName
}

func (c *AnthropicClient) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			if apierr.StatusCode == http.StatusTooManyRequests {
				return "", &APIError{Kind: KindUpstreamRateLimited, Status: apierr.StatusCode, Detail: apierr.Error()}
			}
			return "", &APIError{Kind: KindUpstreamHTTP, Status: apierr.StatusCode, Detail: apierr.Error()}
		}
		return "", &APIError{Kind: KindTransport, Detail: err.Error()}
	}

	if len(resp.Content) == 0 {
		return "", &APIError{Kind: KindResponseParse, Detail: "no content blocks in response"}
	}

	text := resp.Content[0].Text
	if text == "" {
		return "", &APIError{Kind: KindResponseParse, Detail: "empty text block in response"}
	}
	return text, nil
}
