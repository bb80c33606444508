package ai

import (
	"strings"
	"testing"
)

func TestFallbackContentNonEmpty(t *testing.T) {
	for _, platform := range SupportedPlatforms {
		t.Run(platform, func(t *testing.T) {
			content := FallbackContent("quarterly marketing update", platform)
			if content == "" {
				t.Fatalf("fallback content for %s is empty", platform)
			}
		})
	}
}

func TestFallbackContentEmailFormat(t *testing.T) {
	content := FallbackContent("thoughts on leadership", "email")
	if !strings.HasPrefix(content, "Subject: ") {
		t.Fatalf("email fallback should start with a subject line, got %q", content[:40])
	}
}

func TestFallbackContentAnnouncementEmail(t *testing.T) {
	content := FallbackContent("Announce our new product", "email")
	if !strings.HasPrefix(content, "Subject: Exciting Announcement") {
		t.Fatalf("announcement email should lead with the announcement subject, got %q", content[:50])
	}
	if !strings.Contains(content, "Stay tuned for more details. We think you're going to love it.") {
		t.Errorf("unexpected announcement body: %q", content)
	}
}

func TestFallbackContentTwitterLength(t *testing.T) {
	for _, prompt := range []string{
		"Announce our new product",
		"ai training for marketing teams",
		"something entirely unrelated",
	} {
		content := FallbackContent(prompt, "twitter")
		if n := len([]rune(content)); n > 300 {
			t.Errorf("twitter fallback too long for %q: %d runes", prompt, n)
		}
	}
}

func TestTopicFor(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"New training program launch", "training and development"},
		{"Marketing tips for startups", "marketing strategies"},
		{"How AI changes everything", "artificial intelligence"},
		{"Business growth hacks", "business growth"},
		{"Technology roundup", "technology trends"},
		{"Announce our new product", "professional development"},
	}
	for _, tt := range tests {
		if got := topicFor(tt.prompt); got != tt.want {
			t.Errorf("topicFor(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}
