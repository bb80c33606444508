package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestAnalyzeReturnsEmptyWhenUnconfigured(t *testing.T) {
	m := NewMediaAnalyzer(NewGeminiProvider(""))
	path := writeTempFile(t, "photo.jpg", []byte("jpgdata"))

	if got := m.Analyze(context.Background(), []string{path}); got != "" {
		t.Fatalf("expected empty analysis without an API key, got %q", got)
	}
}

func TestAnalyzeSkipsUnsupportedExtensions(t *testing.T) {
	gemini := NewGeminiProvider("test-key")
	m := NewMediaAnalyzer(gemini)
	path := writeTempFile(t, "notes.txt", []byte("plain text"))

	// All files skipped means no API call and an empty result.
	if got := m.Analyze(context.Background(), []string{path}); got != "" {
		t.Fatalf("expected empty analysis for unsupported files, got %q", got)
	}
}

func TestAnalyzeDescribesMedia(t *testing.T) {
	var gotParts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []json.RawMessage `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(body.Contents) == 1 {
			gotParts = len(body.Contents[0].Parts)
		}
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"a sunny beach photo"}]}}]}`)
	}))
	defer srv.Close()

	gemini := NewGeminiProvider("test-key")
	gemini.BaseURL = srv.URL
	m := NewMediaAnalyzer(gemini)

	image := writeTempFile(t, "beach.png", []byte("pngdata"))
	skipped := writeTempFile(t, "doc.pdf", []byte("pdfdata"))

	got := m.Analyze(context.Background(), []string{image, skipped})
	if got != "a sunny beach photo" {
		t.Fatalf("got %q", got)
	}
	// prompt text plus the single accepted image
	if gotParts != 2 {
		t.Fatalf("expected 2 parts in the request, got %d", gotParts)
	}
}

func TestAnalyzeReturnsEmptyOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gemini := NewGeminiProvider("test-key")
	gemini.BaseURL = srv.URL
	m := NewMediaAnalyzer(gemini)

	path := writeTempFile(t, "clip.mp4", []byte("mp4data"))
	if got := m.Analyze(context.Background(), []string{path}); got != "" {
		t.Fatalf("expected empty analysis on upstream failure, got %q", got)
	}
}
