package ai

import (
	"fmt"
	"strings"
)

// topicFor maps a free-form prompt to a coarse topic used by the
// template content below. It keys off the first matching keyword.
func topicFor(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "training"):
		return "training and development"
	case strings.Contains(p, "marketing"):
		return "marketing strategies"
	case strings.Contains(p, "ai"), strings.Contains(p, "artificial intelligence"):
		return "artificial intelligence"
	case strings.Contains(p, "business"):
		return "business growth"
	case strings.Contains(p, "technology"):
		return "technology trends"
	default:
		return "professional development"
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FallbackContent produces deterministic template content for a
// platform when every provider in the chain has failed. Generation
// never returns an empty draft.
func FallbackContent(prompt, platform string) string {
	topic := topicFor(prompt)

	switch platform {
	case "twitter":
		return fmt.Sprintf("🚀 Excited to share insights about %s! This is a game-changer for professionals looking to stay ahead. What's your experience with %s? #professional #growth #innovation", topic, topic)
	case "instagram":
		return fmt.Sprintf("✨ Transform your approach to %s! 💡\n\nHere's what I've learned:\n• Stay curious and keep learning\n• Embrace new challenges\n• Connect with like-minded professionals\n\nWhat's your biggest challenge with %s? Share below! 👇\n\n#professional #growth #learning #success #motivation", topic, topic)
	case "linkedin":
		return fmt.Sprintf("Professional Insight: The Future of %s\n\nAs professionals, we must continuously adapt and evolve our approach to %s. The landscape is changing rapidly, and those who stay ahead of the curve will thrive.\n\nKey considerations:\n• Understanding current trends\n• Developing relevant skills\n• Building strategic partnerships\n\nWhat strategies have you found most effective in %s? I'd love to hear your thoughts and experiences.\n\n#professional #growth #strategy #leadership", titleCase(topic), topic, topic)
	case "facebook":
		return fmt.Sprintf("Hey everyone! 👋\n\nI wanted to share some thoughts about %s that I've been thinking about lately. It's amazing how much the landscape has changed, and I believe we're just getting started!\n\nWhat I find most exciting is the opportunity for growth and innovation. Whether you're just starting out or you're a seasoned professional, there's always something new to learn.\n\nWhat's your take on %s? Have you noticed any interesting trends or changes? I'd love to hear your perspective!\n\n#professional #growth #community #learning", topic, topic)
	case "email":
		if p := strings.ToLower(prompt); strings.Contains(p, "announce") || strings.Contains(p, "launch") {
			return fmt.Sprintf("Subject: Exciting Announcement\n\nHi there,\n\nWe have some exciting news to share with you! We've been working on something special related to %s, and we can't wait for you to see it.\n\nStay tuned for more details. We think you're going to love it.\n\nBest regards,\n[Your Name]", topic)
		}
		return fmt.Sprintf("Subject: Insights on %s\n\nHi there,\n\nI hope this email finds you well. I wanted to share some thoughts about %s that I believe will be valuable for your professional journey.\n\nIn today's rapidly evolving landscape, staying informed about %s is more important than ever. The key is to remain adaptable and open to new approaches.\n\nI'd love to hear your thoughts on this topic and any insights you might have to share.\n\nBest regards,\n[Your Name]", titleCase(topic), topic, topic)
	default:
		return fmt.Sprintf("Professional insight: %s\n\nThis is an important topic that deserves attention and discussion. What are your thoughts on %s?", titleCase(topic), topic)
	}
}
