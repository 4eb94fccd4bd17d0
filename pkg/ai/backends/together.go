package backends

import (
	"context"
	"errors"
	"net/http"
)

type Together struct {
	endpoint string
	client   *http.Client
	settings Settings
}

type togetherRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type togetherResponse struct {
	Output struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	} `json:"output"`
}

func (b *Together) Send(ctx context.Context, prompt, model, apiKey string) (string, error) {
	req := togetherRequest{Model: model, Prompt: prompt, MaxTokens: b.settings.MaxTokens, Temperature: b.settings.Temperature}
	var resp togetherResponse
	if err := postJSON(ctx, b.client, b.endpoint, bearer(apiKey), req, &resp); err != nil {
		return "", err
	}
	if len(resp.Output.Choices) == 0 {
		return "", errors.New("together: no choices in reply")
	}
	return resp.Output.Choices[0].Text, nil
}
