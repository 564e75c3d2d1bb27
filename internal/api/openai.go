package api

import (
	"context"
	"errors"
	"fmt"

	"sports-tracker/internal/config"
	"sports-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

const openAIBaseURL = "https://api.openai.com"

// OpenAIClient wraps the hosted chat-completions endpoint used for
// predictions and soccer stat estimation.
type OpenAIClient struct {
	apiKey  string
	BaseURL string
	client  *fasthttp.Client
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  cfg.OpenAIKey,
		BaseURL: openAIBaseURL,
		client:  newHTTPClient(),
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CreateChatCompletion sends one system+user exchange and returns the raw
// reply text. A nil temperature leaves the provider default in place.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, model, system, user string, temperature *float64) (string, error) {
	if c.apiKey == "" {
		return "", &domain.UpstreamError{Provider: "openai", Err: errors.New("OPENAI_API_KEY is not configured")}
	}

	body := chatCompletionRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
	}

	u := fmt.Sprintf("%s/v1/chat/completions", c.BaseURL)
	resp, err := doPostJSON[chatCompletionResponse](ctx, c.client, "openai", u, "Bearer "+c.apiKey, body)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &domain.UpstreamError{Provider: "openai", Err: errors.New("empty completion response")}
	}
	return resp.Choices[0].Message.Content, nil
}
