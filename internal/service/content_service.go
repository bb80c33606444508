package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Rutuja303/contentforge/internal/ai"
	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

// ContentService covers hand-written drafts, created without going
// through generation. They share the generated_posts table and the
// same review lifecycle.
type ContentService interface {
	CreateDraft(ctx context.Context, userID int64, dc *transfer.DraftCreation) (*models.GeneratedPost, error)
	ListDrafts(ctx context.Context, userID int64, platform string, offset, limit int) ([]*models.GeneratedPost, error)
	UpdateDraft(ctx context.Context, userID, draftID int64, dc *transfer.DraftCreation) (*models.GeneratedPost, error)
	DeleteDraft(ctx context.Context, userID, draftID int64) error
	PostDraft(ctx context.Context, userID, draftID int64) (*transfer.PublishResponse, error)
}

type contentService struct {
	gp        repository.GeneratedPostRepository
	publisher PublishService
}

func NewContentService(gp repository.GeneratedPostRepository, publisher PublishService) ContentService {
	return &contentService{gp: gp, publisher: publisher}
}

func (s *contentService) CreateDraft(ctx context.Context, userID int64, dc *transfer.DraftCreation) (*models.GeneratedPost, error) {
	platform := strings.ToLower(strings.TrimSpace(dc.Platform))
	if !ai.IsSupportedPlatform(platform) {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}
	content := strings.TrimSpace(dc.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrInvalidInput)
	}

	post := models.GeneratedPost{
		UserID:   userID,
		PromptID: sql.NullInt64{},
		Platform: platform,
		Content:  content,
		Status:   models.PostStatusDraft,
	}
	id, err := s.gp.Create(ctx, nil, &post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return &post, nil
}

func (s *contentService) ListDrafts(ctx context.Context, userID int64, platform string, offset, limit int) ([]*models.GeneratedPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.gp.List(ctx, userID, platform, models.PostStatusDraft, offset, limit)
}

func (s *contentService) UpdateDraft(ctx context.Context, userID, draftID int64, dc *transfer.DraftCreation) (*models.GeneratedPost, error) {
	platform := strings.ToLower(strings.TrimSpace(dc.Platform))
	if !ai.IsSupportedPlatform(platform) {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}
	content := strings.TrimSpace(dc.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrInvalidInput)
	}

	draft, err := s.getDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := s.gp.UpdateDraft(ctx, draft.ID, platform, content); err != nil {
		return nil, err
	}
	draft.Platform = platform
	draft.Content = content
	return draft, nil
}

func (s *contentService) DeleteDraft(ctx context.Context, userID, draftID int64) error {
	draft, err := s.getDraft(ctx, userID, draftID)
	if err != nil {
		return err
	}
	return s.gp.Remove(ctx, draft.ID)
}

// PostDraft publishes a draft to its own platform right away.
func (s *contentService) PostDraft(ctx context.Context, userID, draftID int64) (*transfer.PublishResponse, error) {
	draft, err := s.getDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	return s.publisher.PublishNow(ctx, userID, draft.ID, draft.Platform)
}

// getDraft resolves a post only while it still has draft status; posts
// that moved on through review are not drafts anymore.
func (s *contentService) getDraft(ctx context.Context, userID, draftID int64) (*models.GeneratedPost, error) {
	draft, exists, err := s.gp.GetByID(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if !exists || draft.Status != models.PostStatusDraft {
		return nil, fmt.Errorf("%w: draft", ErrNotFound)
	}
	return draft, nil
}
