package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Name() string {
	return c.modelName
}

func (c *OpenAIClient) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			if apierr.StatusCode == http.StatusTooManyRequests {
				return "", &APIError{Kind: KindUpstreamRateLimited, Status: apierr.StatusCode, Detail: apierr.Error()}
			}
			return "", &APIError{Kind: KindUpstreamHTTP, Status: apierr.StatusCode, Detail: apierr.Error()}
		}
		return "", &APIError{Kind: KindTransport, Detail: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", &APIError{Kind: KindResponseParse, Detail: "no choices in response"}
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", &APIError{Kind: KindResponseParse, Detail: "empty message content in response"}
	}
	return text, nil
}
