// Package backends holds the content backends the AI service can dispatch a
// prompt to, one implementation per wire protocol, plus the registry that
// describes them.
package backends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MockReply is what the mock backend answers. The service treats it as "no
// content" and falls back.
const MockReply = "mock_response"

const (
	DefaultTimeout     = 60 * time.Second
	DefaultMaxTokens   = 800
	DefaultTemperature = 0.7

	maxErrorBody = 512
)

// Backend sends one prompt and returns the raw reply text.
type Backend interface {
	Send(ctx context.Context, prompt, model, apiKey string) (string, error)
}

// Settings are the generation knobs shared by every backend.
type Settings struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func DefaultSettings() Settings {
	return Settings{MaxTokens: DefaultMaxTokens, Temperature: DefaultTemperature, Timeout: DefaultTimeout}
}

// TimeoutFor is the backend's own timeout when set, else the settings default.
func (s Settings) TimeoutFor(spec Spec) time.Duration {
	if spec.Timeout > 0 {
		return spec.Timeout
	}
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

// New builds the backend for spec.
func New(spec Spec, settings Settings) (Backend, error) {
	client := &http.Client{Timeout: settings.TimeoutFor(spec)}
	switch spec.Kind {
	case KindOpenAIChat:
		return &ChatCompletions{endpoint: spec.Endpoint, client: client, settings: settings}, nil
	case KindAnthropicMessages:
		return NewAnthropic(spec.Endpoint, client, settings), nil
	case KindCohereGenerate:
		return &Cohere{endpoint: spec.Endpoint, client: client, settings: settings}, nil
	case KindTogetherInference:
		return &Together{endpoint: spec.Endpoint, client: client, settings: settings}, nil
	case KindHFInference:
		return &HuggingFace{endpoint: spec.Endpoint, client: client, settings: settings}, nil
	case KindOllamaGenerate:
		return &Ollama{endpoint: spec.Endpoint, client: client}, nil
	case KindMock:
		return Mock{}, nil
	}
	return nil, fmt.Errorf("backends: unsupported kind %q", spec.Kind)
}

// StatusError is a non-2xx reply. Body is truncated and never includes
// request headers.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

func bearer(key string) map[string]string {
	if key == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + key}
}

// postJSON sends body as JSON and decodes a 2xx reply into out.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(rb) > maxErrorBody {
			rb = rb[:maxErrorBody]
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: string(rb)}
	}
	if err := json.Unmarshal(rb, out); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}
