package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	config "github.com/Rutuja303/contentforge/configs"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

const maxUploadSize = 50 * 1024 * 1024

var imageExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
}

var videoExtensions = map[string]struct{}{
	"mp4": {}, "avi": {}, "mov": {}, "webm": {},
}

type MediaService interface {
	SaveUploads(ctx context.Context, files []*multipart.FileHeader) []transfer.UploadedMedia
	CleanupOldFiles(maxAge time.Duration) error
}

type mediaService struct {
	cfg config.Config
	r2  *R2Service
}

func NewMediaService(cfg config.Config, r2 *R2Service) MediaService {
	return &mediaService{cfg: cfg, r2: r2}
}

// SaveUploads writes accepted files under type-specific directories
// with random names. Files that are too large, unreadable, or of an
// unsupported type are skipped rather than failing the batch.
func (s *mediaService) SaveUploads(ctx context.Context, files []*multipart.FileHeader) []transfer.UploadedMedia {
	var saved []transfer.UploadedMedia

	for _, file := range files {
		if file.Size > maxUploadSize {
			slog.Info("skipping oversized upload", "filename", file.Filename, "size", file.Size)
			continue
		}

		media, err := s.saveOne(ctx, file)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		saved = append(saved, *media)
	}
	return saved
}

func (s *mediaService) saveOne(ctx context.Context, file *multipart.FileHeader) (*transfer.UploadedMedia, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	fileType, err := filetype.Match(content)
	if err != nil || fileType == types.Unknown {
		return nil, fmt.Errorf("unsupported file type for %s", file.Filename)
	}

	var kind string
	if _, ok := imageExtensions[fileType.Extension]; ok {
		kind = "images"
	} else if _, ok := videoExtensions[fileType.Extension]; ok {
		kind = "videos"
	} else {
		return nil, fmt.Errorf("file type %s is not allowed", fileType.Extension)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	name := id + "." + fileType.Extension

	dir := filepath.Join(s.cfg.UploadDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, err
	}

	// Mirror to R2 when configured; local files remain the source of
	// truth either way.
	if s.r2 != nil && s.cfg.R2.BucketName != "" {
		if err := s.r2.UploadToR2(ctx, kind+"/"+name, content, fileType.MIME.Value); err != nil {
			slog.Info(err.Error())
		}
	}

	return &transfer.UploadedMedia{Path: path, Filename: name, Kind: strings.TrimSuffix(kind, "s")}, nil
}

// CleanupOldFiles removes uploads older than maxAge from both type
// directories. Best effort: the first filesystem error stops the walk.
func (s *mediaService) CleanupOldFiles(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	for _, kind := range []string{"images", "videos"} {
		dir := filepath.Join(s.cfg.UploadDir, kind)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				return err
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
					return err
				}
				slog.Info("removed old upload", "file", entry.Name())
			}
		}
	}
	return nil
}
