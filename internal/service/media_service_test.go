package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	config "github.com/Rutuja303/contentforge/configs"
)

// pngHeader is a minimal valid PNG signature for type sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func buildFileHeaders(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		part.Write(content)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(128 << 20)
	if err != nil {
		t.Fatalf("reading form back: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["files"]
}

func newTestMediaService(t *testing.T) (MediaService, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{UploadDir: dir}
	return NewMediaService(cfg, nil), dir
}

func TestSaveUploadsClassifiesByType(t *testing.T) {
	s, dir := newTestMediaService(t)

	headers := buildFileHeaders(t, map[string][]byte{
		"photo.png": pngHeader,
	})

	saved := s.SaveUploads(context.Background(), headers)
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved file, got %d", len(saved))
	}
	if saved[0].Kind != "image" {
		t.Errorf("got kind %q", saved[0].Kind)
	}
	if _, err := os.Stat(saved[0].Path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if filepath.Dir(saved[0].Path) != filepath.Join(dir, "images") {
		t.Errorf("file saved to wrong directory: %s", saved[0].Path)
	}
	// the random name replaces whatever the client sent
	if saved[0].Filename == "photo.png" {
		t.Error("original filename must not be reused")
	}
}

func TestSaveUploadsSkipsUnsupportedFiles(t *testing.T) {
	s, _ := newTestMediaService(t)

	headers := buildFileHeaders(t, map[string][]byte{
		"notes.txt": []byte("just some text"),
		"photo.png": pngHeader,
	})

	saved := s.SaveUploads(context.Background(), headers)
	if len(saved) != 1 {
		t.Fatalf("expected the unsupported file to be skipped, got %d saved", len(saved))
	}
}

func TestCleanupOldFiles(t *testing.T) {
	s, dir := newTestMediaService(t)

	imgDir := filepath.Join(dir, "images")
	os.MkdirAll(imgDir, 0o755)

	oldFile := filepath.Join(imgDir, "old.png")
	newFile := filepath.Join(imgDir, "new.png")
	os.WriteFile(oldFile, pngHeader, 0o644)
	os.WriteFile(newFile, pngHeader, 0o644)

	stale := time.Now().Add(-48 * time.Hour)
	os.Chtimes(oldFile, stale, stale)

	if err := s.CleanupOldFiles(24 * time.Hour); err != nil {
		t.Fatalf("CleanupOldFiles failed: %v", err)
	}

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Error("stale file should be removed")
	}
	if _, err := os.Stat(newFile); err != nil {
		t.Error("recent file should survive cleanup")
	}
}
