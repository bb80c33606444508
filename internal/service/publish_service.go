package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	config "github.com/Rutuja303/contentforge/configs"
	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/platforms"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
	"github.com/Rutuja303/contentforge/pkg/utils"
)

type PublishService interface {
	PublishNow(ctx context.Context, userID, postID int64, platform string) (*transfer.PublishResponse, error)
	PublishScheduled(ctx context.Context, scheduledPostID int64) error
}

type publishService struct {
	cfg      config.Config
	registry map[string]*platforms.Platform
	gp       repository.GeneratedPostRepository
	sp       repository.ScheduledPostRepository
	pc       repository.PlatformConnectionRepository
}

func NewPublishService(
	cfg config.Config,
	registry map[string]*platforms.Platform,
	gp repository.GeneratedPostRepository,
	sp repository.ScheduledPostRepository,
	pc repository.PlatformConnectionRepository) PublishService {
	return &publishService{
		cfg:      cfg,
		registry: registry,
		gp:       gp,
		sp:       sp,
		pc:       pc,
	}
}

// PublishNow pushes the post to the platform immediately. Upstream
// failures come back in the response payload, not as an error.
func (s *publishService) PublishNow(ctx context.Context, userID, postID int64, platform string) (*transfer.PublishResponse, error) {
	post, exists, err := s.gp.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}

	result, err := s.publish(ctx, userID, platform, post.Content)
	if err != nil {
		return nil, err
	}

	if result.Success {
		if err := s.gp.UpdateStatus(ctx, post.ID, models.PostStatusPublished); err != nil {
			return nil, err
		}
	}
	return &transfer.PublishResponse{
		Success: result.Success,
		Message: result.Message,
		Error:   result.Error,
		PostID:  result.PostID,
	}, nil
}

// PublishScheduled executes one due schedule. The queue worker and the
// cron sweep both land here; rows no longer in the scheduled state are
// skipped so a double enqueue stays harmless.
func (s *publishService) PublishScheduled(ctx context.Context, scheduledPostID int64) error {
	sp, exists, err := s.sp.Get(ctx, scheduledPostID)
	if err != nil {
		return err
	}
	if !exists {
		slog.Info("scheduled post no longer exists", "scheduled_post_id", scheduledPostID)
		return nil
	}
	if sp.Status != models.ScheduleStatusScheduled {
		return nil
	}
	// A task enqueued before a reschedule fires at the old time; the
	// sweep job re-enqueues the row once the new time is due.
	if time.Until(sp.ScheduledTime) > time.Minute {
		return nil
	}

	post, exists, err := s.gp.Get(ctx, sp.GeneratedPostID)
	if err != nil {
		return err
	}
	if !exists {
		return s.sp.MarkFailed(ctx, sp.ID, "generated post was deleted")
	}

	result, err := s.publish(ctx, post.UserID, sp.Platform, post.Content)
	if err != nil {
		return s.sp.MarkFailed(ctx, sp.ID, err.Error())
	}
	if !result.Success {
		return s.sp.MarkFailed(ctx, sp.ID, result.Error)
	}

	if err := s.sp.MarkPublished(ctx, sp.ID, time.Now()); err != nil {
		return err
	}
	return s.gp.UpdateStatus(ctx, post.ID, models.PostStatusPublished)
}

func (s *publishService) publish(ctx context.Context, userID int64, platform, content string) (*platforms.PublishResult, error) {
	pl, ok := s.registry[platform]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}

	conn, exists, err := s.pc.GetActive(ctx, userID, platform)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no active %s connection", ErrNotFound, platform)
	}

	accessToken, err := utils.Decrypt(conn.AccessToken, []byte(s.cfg.SecretKey))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	result := pl.Publish(ctx, pl, accessToken, conn.PlatformUserID.String, content)
	if !result.Success {
		slog.Info("publish failed", "platform", platform, "user_id", userID, "error", result.Error)
	}
	return result, nil
}
