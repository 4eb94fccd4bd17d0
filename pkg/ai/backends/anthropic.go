package backends

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const messagesPath = "/v1/messages"

// Anthropic uses the official SDK against the messages API. Retries are off
// so a failing call falls back right away.
type Anthropic struct {
	baseURL  string
	client   *http.Client
	settings Settings
}

// NewAnthropic accepts either the API base URL or the full messages endpoint.
func NewAnthropic(endpoint string, client *http.Client, settings Settings) *Anthropic {
	base := strings.TrimSuffix(strings.TrimSuffix(endpoint, "/"), messagesPath)
	return &Anthropic{baseURL: base + "/", client: client, settings: settings}
}

func (b *Anthropic) Send(ctx context.Context, prompt, model, apiKey string) (string, error) {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(b.baseURL),
		option.WithHTTPClient(b.client),
		option.WithMaxRetries(0),
	)
	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(b.settings.MaxTokens),
		Temperature: anthropic.Float(b.settings.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{StatusCode: apiErr.StatusCode, Body: http.StatusText(apiErr.StatusCode)}
		}
		return "", err
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic: no text block in reply")
}
