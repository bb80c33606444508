package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rutuja303/contentforge/internal/ai"
	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
)

type PostService interface {
	List(ctx context.Context, userID int64, platform, status string, offset, limit int) ([]*models.GeneratedPost, error)
	Get(ctx context.Context, userID, postID int64) (*models.GeneratedPost, error)
	UpdateContent(ctx context.Context, userID, postID int64, content string) (*models.GeneratedPost, error)
	Approve(ctx context.Context, userID, postID int64) (*models.GeneratedPost, error)
	Reject(ctx context.Context, userID, postID int64) (*models.GeneratedPost, error)
	Improve(ctx context.Context, userID, postID int64, feedback string) (*models.GeneratedPost, error)
	Remove(ctx context.Context, userID, postID int64) error
}

type postService struct {
	generator *ai.Generator
	gp        repository.GeneratedPostRepository
}

func NewPostService(generator *ai.Generator, gp repository.GeneratedPostRepository) PostService {
	return &postService{generator: generator, gp: gp}
}

func (s *postService) List(ctx context.Context, userID int64, platform, status string, offset, limit int) ([]*models.GeneratedPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.gp.List(ctx, userID, platform, status, offset, limit)
}

func (s *postService) Get(ctx context.Context, userID, postID int64) (*models.GeneratedPost, error) {
	post, exists, err := s.gp.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}
	return post, nil
}

// UpdateContent replaces the draft text. Any edit moves the post back
// to draft so the review cycle starts over.
func (s *postService) UpdateContent(ctx context.Context, userID, postID int64, content string) (*models.GeneratedPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrInvalidInput)
	}

	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if err := s.gp.UpdateContent(ctx, post.ID, content, models.PostStatusDraft); err != nil {
		return nil, err
	}
	post.Content = content
	post.Status = models.PostStatusDraft
	return post, nil
}

func (s *postService) setStatus(ctx context.Context, userID, postID int64, status string) (*models.GeneratedPost, error) {
	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPublished {
		return nil, fmt.Errorf("%w: published posts cannot change status", ErrConflict)
	}

	if err := s.gp.UpdateStatus(ctx, post.ID, status); err != nil {
		return nil, err
	}
	post.Status = status
	return post, nil
}

func (s *postService) Approve(ctx context.Context, userID, postID int64) (*models.GeneratedPost, error) {
	return s.setStatus(ctx, userID, postID, models.PostStatusApproved)
}

func (s *postService) Reject(ctx context.Context, userID, postID int64) (*models.GeneratedPost, error) {
	return s.setStatus(ctx, userID, postID, models.PostStatusRejected)
}

// Improve rewrites the content from reviewer feedback and stores the
// result as a fresh draft. If every provider fails the content is left
// as it was.
func (s *postService) Improve(ctx context.Context, userID, postID int64, feedback string) (*models.GeneratedPost, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, fmt.Errorf("%w: feedback cannot be empty", ErrInvalidInput)
	}

	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	improved := s.generator.Improve(ctx, post.Content, post.Platform, feedback)
	if improved == post.Content {
		return post, nil
	}

	if err := s.gp.UpdateContent(ctx, post.ID, improved, models.PostStatusDraft); err != nil {
		return nil, err
	}
	post.Content = improved
	post.Status = models.PostStatusDraft
	return post, nil
}

func (s *postService) Remove(ctx context.Context, userID, postID int64) error {
	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return err
	}
	return s.gp.Remove(ctx, post.ID)
}
