package backends

import (
	"context"
	"errors"
	"net/http"
)

// ChatCompletions speaks the OpenAI chat completions protocol, which Groq
// also serves.
type ChatCompletions struct {
	endpoint string
	client   *http.Client
	settings Settings
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (b *ChatCompletions) Send(ctx context.Context, prompt, model, apiKey string) (string, error) {
	req := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   b.settings.MaxTokens,
		Temperature: b.settings.Temperature,
	}
	var resp chatResponse
	if err := postJSON(ctx, b.client, b.endpoint, bearer(apiKey), req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completions: no choices in reply")
	}
	return resp.Choices[0].Message.Content, nil
}
