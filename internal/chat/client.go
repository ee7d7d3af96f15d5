package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one prior turn of the conversation, supplied by the
// caller with each request. Nothing is stored between requests.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the OpenAI chat completion API as Zelda.
type Client struct {
	api   *openai.Client
	model string
}

// Config holds configuration for the chat client.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// New creates a new chat client.
func New(cfg Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

// Reply sends the user's message, plus any caller-supplied history,
// and returns Zelda's reply text for the given persona mode.
func (c *Client) Reply(ctx context.Context, mode, message string, history []Message) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(mode)},
	}

	for _, item := range history {
		role := item.Role
		if role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: item.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// IsRateLimited reports whether err is an API quota or rate limit
// failure, which gets a friendlier reply at the HTTP layer.
func IsRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
