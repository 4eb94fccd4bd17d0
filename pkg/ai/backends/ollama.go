package backends

import (
	"context"
	"net/http"
)

// Ollama talks to a local server and needs no key.
type Ollama struct {
	endpoint string
	client   *http.Client
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (b *Ollama) Send(ctx context.Context, prompt, model, _ string) (string, error) {
	var resp ollamaResponse
	if err := postJSON(ctx, b.client, b.endpoint, nil, ollamaRequest{Model: model, Prompt: prompt}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
