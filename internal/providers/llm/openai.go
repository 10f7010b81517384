package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAICompatible talks to any /chat/completions endpoint that follows the
// OpenAI wire format (OpenAI, OpenRouter, Gemini's compatibility layer).
type OpenAICompatible struct {
	client *resty.Client
}

func NewOpenAICompatible(apiKey, baseURL string, timeout time.Duration) (*OpenAICompatible, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("OPENAI_API_KEY is required for the openai provider")
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &OpenAICompatible{client: c}, nil
}

func (o *OpenAICompatible) Name() string { return "openai" }

func (o *OpenAICompatible) Close() error { return nil }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func (o *OpenAICompatible) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: req.Model,
			Messages: []chatMessage{
				{Role: "system", Content: req.System},
				{Role: "user", Content: req.User},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("chat completion: http status %d: %s", resp.StatusCode(), msg)
	}
	if msg := gjson.Get(body, "error.message"); msg.Exists() {
		return "", fmt.Errorf("chat completion: %s", msg.String())
	}

	content := gjson.Get(body, "choices.0.message.content").String()
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
