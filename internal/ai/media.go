package ai

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const mediaAnalysisPrompt = "Analyze these media files and provide a detailed description of what you see. Focus on elements that would be relevant for creating social media content. Include details about the visual elements, mood, colors, and any text or objects visible."

var mediaMimeTypes = map[string]string{
	".jpg":  "image/jpg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".avi":  "video/avi",
	".mov":  "video/mov",
	".webm": "video/webm",
}

// MediaAnalyzer describes uploaded media through Gemini's vision API,
// the only provider in the chain that accepts inline media.
type MediaAnalyzer struct {
	gemini *GeminiProvider
}

func NewMediaAnalyzer(gemini *GeminiProvider) *MediaAnalyzer {
	return &MediaAnalyzer{gemini: gemini}
}

// Analyze returns a textual description of the given files, or an
// empty string when analysis is unavailable or fails. Generation
// carries on without media context in that case.
func (m *MediaAnalyzer) Analyze(ctx context.Context, paths []string) string {
	if len(paths) == 0 || m.gemini == nil || !m.gemini.Configured() {
		return ""
	}

	parts := []geminiPart{{Text: mediaAnalysisPrompt}}
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		mimeType, ok := mediaMimeTypes[ext]
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}})
	}
	if len(parts) == 1 {
		return ""
	}

	description, err := m.gemini.generateContent(ctx, parts, 0.3, 300)
	if err != nil {
		slog.Info(err.Error())
		return ""
	}
	return description
}
