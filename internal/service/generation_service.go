package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/Rutuja303/contentforge/internal/ai"
	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type GenerationService interface {
	Generate(ctx context.Context, userID int64, prompt string, platforms []string, files []*multipart.FileHeader) (*transfer.GenerationResponse, error)
	Regenerate(ctx context.Context, userID, promptID int64, platforms []string) (*transfer.GenerationResponse, error)
	ListPrompts(ctx context.Context, userID int64, offset, limit int) ([]*models.Prompt, error)
}

type generationService struct {
	tx        repository.TxRunner
	generator *ai.Generator
	media     MediaService
	pr        repository.PromptRepository
	gp        repository.GeneratedPostRepository
}

func NewGenerationService(
	tx repository.TxRunner,
	generator *ai.Generator,
	media MediaService,
	pr repository.PromptRepository,
	gp repository.GeneratedPostRepository) GenerationService {
	return &generationService{
		tx:        tx,
		generator: generator,
		media:     media,
		pr:        pr,
		gp:        gp,
	}
}

func normalizePlatforms(platforms []string) ([]string, error) {
	if len(platforms) == 0 {
		return nil, fmt.Errorf("%w: at least one platform is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(platforms))
	var out []string
	for _, p := range platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if !ai.IsSupportedPlatform(p) {
			return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, p)
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// Generate saves the prompt, runs the provider chain per platform, and
// persists one draft row per platform in a single transaction. Content
// is always produced; provider failures degrade to template content.
func (s *generationService) Generate(ctx context.Context, userID int64, prompt string, platforms []string, files []*multipart.FileHeader) (*transfer.GenerationResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidInput)
	}
	targets, err := normalizePlatforms(platforms)
	if err != nil {
		return nil, err
	}

	var mediaPaths []string
	if s.media != nil && len(files) > 0 {
		for _, m := range s.media.SaveUploads(ctx, files) {
			mediaPaths = append(mediaPaths, m.Path)
		}
	}

	content := s.generator.Generate(ctx, prompt, targets, mediaPaths)

	var promptID int64
	var posts []*models.GeneratedPost
	err = s.tx.RunInTx(ctx, func(tx *sql.Tx) error {
		promptID, err = s.pr.Create(ctx, tx, &models.Prompt{UserID: userID, PromptText: prompt})
		if err != nil {
			return fmt.Errorf("error saving prompt: %w", err)
		}

		for _, platform := range targets {
			post := models.GeneratedPost{
				UserID:   userID,
				PromptID: sql.NullInt64{Int64: promptID, Valid: true},
				Platform: platform,
				Content:  content[platform],
				Status:   models.PostStatusDraft,
			}
			id, err := s.gp.Create(ctx, tx, &post)
			if err != nil {
				return fmt.Errorf("error saving generated post: %w", err)
			}
			post.ID = id
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("generated drafts", "user_id", userID, "prompt_id", promptID, "platforms", len(posts))
	return &transfer.GenerationResponse{PromptID: promptID, Posts: posts}, nil
}

// Regenerate reruns generation for an existing prompt. Platforms that
// already have a draft get their content replaced and the status reset
// to draft; new platforms get fresh rows.
func (s *generationService) Regenerate(ctx context.Context, userID, promptID int64, platforms []string) (*transfer.GenerationResponse, error) {
	prompt, exists, err := s.pr.GetByID(ctx, promptID, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: prompt", ErrNotFound)
	}

	targets, err := normalizePlatforms(platforms)
	if err != nil {
		return nil, err
	}

	content := s.generator.Generate(ctx, prompt.PromptText, targets, nil)

	var posts []*models.GeneratedPost
	for _, platform := range targets {
		existing, found, err := s.gp.GetByPromptAndPlatform(ctx, promptID, platform)
		if err != nil {
			return nil, err
		}

		if found {
			if err := s.gp.UpdateContent(ctx, existing.ID, content[platform], models.PostStatusDraft); err != nil {
				return nil, err
			}
			existing.Content = content[platform]
			existing.Status = models.PostStatusDraft
			posts = append(posts, existing)
			continue
		}

		post := models.GeneratedPost{
			UserID:   userID,
			PromptID: sql.NullInt64{Int64: promptID, Valid: true},
			Platform: platform,
			Content:  content[platform],
			Status:   models.PostStatusDraft,
		}
		id, err := s.gp.Create(ctx, nil, &post)
		if err != nil {
			return nil, err
		}
		post.ID = id
		posts = append(posts, &post)
	}

	return &transfer.GenerationResponse{PromptID: promptID, Posts: posts}, nil
}

func (s *generationService) ListPrompts(ctx context.Context, userID int64, offset, limit int) ([]*models.Prompt, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.pr.ListByUserID(ctx, userID, offset, limit)
}
