package backends

import (
	"context"
	"errors"
	"net/http"
)

type Cohere struct {
	endpoint string
	client   *http.Client
	settings Settings
}

type cohereRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type cohereResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

func (b *Cohere) Send(ctx context.Context, prompt, model, apiKey string) (string, error) {
	req := cohereRequest{Model: model, Prompt: prompt, MaxTokens: b.settings.MaxTokens, Temperature: b.settings.Temperature}
	var resp cohereResponse
	if err := postJSON(ctx, b.client, b.endpoint, bearer(apiKey), req, &resp); err != nil {
		return "", err
	}
	if len(resp.Generations) == 0 {
		return "", errors.New("cohere: no generations in reply")
	}
	return resp.Generations[0].Text, nil
}
