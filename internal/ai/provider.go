package ai

import (
	"context"
	"log/slog"

	config "github.com/Rutuja303/contentforge/configs"
)

// Provider generates text from a system instruction and a user prompt.
// Unconfigured providers report Configured() == false and are skipped
// by the chain without being called.
type Provider interface {
	Name() string
	Configured() bool
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// ChainFromConfig builds the ordered provider chain. Gemini is the
// primary when its key is set, otherwise OpenAI; the remaining hosted
// providers follow in openai, groq, gemini order. A local Ollama
// instance, when configured, sits at the end of the chain.
func ChainFromConfig(cfg config.Config) []Provider {
	gemini := NewGeminiProvider(cfg.GeminiAPIKey)
	openai := NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	groq := NewGroqProvider(cfg.GroqAPIKey)

	var chain []Provider
	if gemini.Configured() {
		chain = append(chain, gemini, openai, groq)
	} else {
		chain = append(chain, openai, groq, gemini)
	}

	if cfg.OllamaHost != "" {
		ollama, err := NewOllamaProvider(cfg.OllamaHost, cfg.OllamaModel)
		if err != nil {
			slog.Info(err.Error())
		} else {
			chain = append(chain, ollama)
		}
	}
	return chain
}
