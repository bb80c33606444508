package ai

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaProvider talks to a local Ollama instance. It sits last in the
// chain so the hosted providers are preferred when their keys are set.
type OllamaProvider struct {
	client *api.Client
	model  string
}

func NewOllamaProvider(host, model string) (*OllamaProvider, error) {
	parsed, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host: %w", err)
	}
	return &OllamaProvider{
		client: api.NewClient(parsed, nil),
		model:  model,
	}, nil
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

func (o *OllamaProvider) Configured() bool {
	return o.client != nil
}

func (o *OllamaProvider) Generate(ctx context.Context, system, prompt string) (string, error) {
	req := &api.GenerateRequest{
		Model:  o.model,
		System: system,
		Prompt: prompt,
		Stream: new(bool), // false
		Options: map[string]interface{}{
			"temperature": 0.7,
			"num_predict": 500,
		},
	}

	var full strings.Builder
	err := o.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		full.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", err
	}
	return trimContent(full.String()), nil
}
