package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// Generator turns a prompt into platform-tailored content by walking
// an ordered provider chain and degrading to template content when
// every provider fails. It never returns an empty draft.
type Generator struct {
	providers []Provider
	analyzer  *MediaAnalyzer
}

func NewGenerator(providers []Provider, analyzer *MediaAnalyzer) *Generator {
	return &Generator{providers: providers, analyzer: analyzer}
}

// Generate produces one piece of content per requested platform.
// Media files, when present, are analyzed once and their description
// appended to the prompt shared by every platform.
func (g *Generator) Generate(ctx context.Context, prompt string, platforms []string, mediaPaths []string) map[string]string {
	if g.analyzer != nil && len(mediaPaths) > 0 {
		if analysis := g.analyzer.Analyze(ctx, mediaPaths); analysis != "" {
			prompt = fmt.Sprintf("%s\n\nMedia context: %s", prompt, analysis)
		}
	}

	content := make(map[string]string, len(platforms))
	for _, platform := range platforms {
		content[platform] = g.generateFor(ctx, prompt, platform)
	}
	return content
}

func (g *Generator) generateFor(ctx context.Context, prompt, platform string) string {
	system := SystemPrompt(platform)
	userPrompt := "Create engaging content about: " + prompt

	for _, provider := range g.providers {
		if !provider.Configured() {
			continue
		}
		content, err := provider.Generate(ctx, system, userPrompt)
		if err != nil {
			slog.Info("provider failed", "provider", provider.Name(), "platform", platform, "error", err.Error())
			continue
		}
		if content != "" {
			slog.Info("generated content", "provider", provider.Name(), "platform", platform)
			return content
		}
	}

	slog.Info("all providers failed, using fallback content", "platform", platform)
	return FallbackContent(prompt, platform)
}

// Improve rewrites existing content according to reviewer feedback.
// When every provider fails the original content comes back unchanged.
func (g *Generator) Improve(ctx context.Context, content, platform, feedback string) string {
	system := fmt.Sprintf("You are a social media expert. Improve this %s content based on the feedback.", platform)
	prompt := fmt.Sprintf("Original content: %s\n\nFeedback: %s\n\nPlease improve the content.", content, feedback)

	for _, provider := range g.providers {
		if !provider.Configured() {
			continue
		}
		improved, err := provider.Generate(ctx, system, prompt)
		if err != nil {
			slog.Info("provider failed", "provider", provider.Name(), "error", err.Error())
			continue
		}
		if improved != "" {
			return improved
		}
	}
	return content
}
