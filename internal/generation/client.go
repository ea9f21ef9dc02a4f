package generation

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient abstracts the external text-generation service so the generator
// can be exercised in tests without network access.
type ChatClient interface {
	// Complete sends one system+user exchange and returns the raw model text.
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIChat implements ChatClient with the OpenAI chat completion API.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat creates an OpenAI-backed chat client.
func NewOpenAIChat(apiKey, model string) (*OpenAIChat, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	return &OpenAIChat{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *OpenAIChat) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
