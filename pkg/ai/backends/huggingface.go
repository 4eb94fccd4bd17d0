package backends

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// HuggingFace calls the hosted inference API. The model id is appended to the
// endpoint.
type HuggingFace struct {
	endpoint string
	client   *http.Client
	settings Settings
}

type hfRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters map[string]interface{} `json:"parameters"`
}

func (b *HuggingFace) Send(ctx context.Context, prompt, model, apiKey string) (string, error) {
	params := map[string]interface{}{
		"max_new_tokens": b.settings.MaxTokens,
		"temperature":    b.settings.Temperature,
	}
	// text2text models take a length cap instead of sampling options
	if strings.Contains(strings.ToLower(model), "flan-t5") {
		params = map[string]interface{}{"max_length": b.settings.MaxTokens}
	}

	var raw json.RawMessage
	if err := postJSON(ctx, b.client, b.endpoint+model, bearer(apiKey), hfRequest{Inputs: prompt, Parameters: params}, &raw); err != nil {
		return "", err
	}

	var generated []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &generated); err != nil || len(generated) == 0 {
		return string(raw), nil
	}
	// causal models echo the prompt before the completion
	return strings.TrimSpace(strings.TrimPrefix(generated[0].GeneratedText, prompt)), nil
}
