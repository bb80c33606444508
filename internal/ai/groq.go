package ai

import (
	"context"
	"net/http"
	"time"
)

const defaultGroqBaseURL = "https://api.groq.com"

type GroqProvider struct {
	apiKey  string
	model   string
	BaseURL string
	client  *http.Client
}

func NewGroqProvider(apiKey string) *GroqProvider {
	return &GroqProvider{
		apiKey:  apiKey,
		model:   "llama3-8b-8192",
		BaseURL: defaultGroqBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *GroqProvider) Name() string {
	return "groq"
}

func (g *GroqProvider) Configured() bool {
	return g.apiKey != ""
}

func (g *GroqProvider) Generate(ctx context.Context, system, prompt string) (string, error) {
	return chatComplete(ctx, g.client, g.BaseURL+"/openai/v1/chat/completions", g.apiKey, chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
}
