package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rutuja303/contentforge/internal/ai"
	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type ScheduleService interface {
	Create(ctx context.Context, userID int64, sc *transfer.ScheduleCreation) (*models.ScheduledPost, time.Duration, error)
	List(ctx context.Context, userID int64, status string, offset, limit int) ([]*models.ScheduledPost, error)
	Get(ctx context.Context, userID, scheduleID int64) (*models.ScheduledPost, error)
	UpdateTime(ctx context.Context, userID, scheduleID int64, scheduledTime time.Time) (*models.ScheduledPost, time.Duration, error)
	Cancel(ctx context.Context, userID, scheduleID int64) error
	Upcoming(ctx context.Context, userID int64, limit int) ([]*models.ScheduledPost, error)
}

type scheduleService struct {
	gp repository.GeneratedPostRepository
	sp repository.ScheduledPostRepository
}

func NewScheduleService(gp repository.GeneratedPostRepository, sp repository.ScheduledPostRepository) ScheduleService {
	return &scheduleService{gp: gp, sp: sp}
}

// Create records intent to publish a post at a future time. A post can
// hold at most one schedule per platform; the second attempt conflicts.
func (s *scheduleService) Create(ctx context.Context, userID int64, sc *transfer.ScheduleCreation) (*models.ScheduledPost, time.Duration, error) {
	platform := strings.ToLower(strings.TrimSpace(sc.Platform))
	if !ai.IsSupportedPlatform(platform) {
		return nil, 0, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}
	if sc.ScheduledTime.IsZero() {
		return nil, 0, fmt.Errorf("%w: scheduled_time is required", ErrInvalidInput)
	}
	if sc.ScheduledTime.Before(time.Now()) {
		return nil, 0, fmt.Errorf("%w: scheduled_time must be in the future", ErrInvalidInput)
	}

	_, exists, err := s.gp.GetByID(ctx, sc.GeneratedPostID, userID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, fmt.Errorf("%w: post", ErrNotFound)
	}

	taken, err := s.sp.ExistsForPostAndPlatform(ctx, sc.GeneratedPostID, platform)
	if err != nil {
		return nil, 0, err
	}
	if taken {
		return nil, 0, fmt.Errorf("%w: post is already scheduled for %s", ErrConflict, platform)
	}

	sp := models.ScheduledPost{
		GeneratedPostID: sc.GeneratedPostID,
		Platform:        platform,
		ScheduledTime:   sc.ScheduledTime,
		Status:          models.ScheduleStatusScheduled,
	}
	id, err := s.sp.Create(ctx, &sp)
	if err != nil {
		return nil, 0, err
	}
	sp.ID = id

	delay := time.Until(sc.ScheduledTime)
	if delay < 0 {
		delay = 0
	}
	return &sp, delay, nil
}

func (s *scheduleService) List(ctx context.Context, userID int64, status string, offset, limit int) ([]*models.ScheduledPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.sp.ListByUserID(ctx, userID, status, offset, limit)
}

func (s *scheduleService) Get(ctx context.Context, userID, scheduleID int64) (*models.ScheduledPost, error) {
	sp, exists, err := s.sp.GetByID(ctx, scheduleID, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: schedule", ErrNotFound)
	}
	return sp, nil
}

// UpdateTime moves a pending schedule. Published and failed schedules
// are history and cannot be rescheduled.
func (s *scheduleService) UpdateTime(ctx context.Context, userID, scheduleID int64, scheduledTime time.Time) (*models.ScheduledPost, time.Duration, error) {
	if scheduledTime.IsZero() || scheduledTime.Before(time.Now()) {
		return nil, 0, fmt.Errorf("%w: scheduled_time must be in the future", ErrInvalidInput)
	}

	sp, err := s.Get(ctx, userID, scheduleID)
	if err != nil {
		return nil, 0, err
	}
	if sp.Status != models.ScheduleStatusScheduled {
		return nil, 0, fmt.Errorf("%w: only pending schedules can be moved", ErrConflict)
	}

	if err := s.sp.UpdateTime(ctx, sp.ID, scheduledTime); err != nil {
		return nil, 0, err
	}
	sp.ScheduledTime = scheduledTime

	delay := time.Until(scheduledTime)
	if delay < 0 {
		delay = 0
	}
	return sp, delay, nil
}

func (s *scheduleService) Cancel(ctx context.Context, userID, scheduleID int64) error {
	sp, err := s.Get(ctx, userID, scheduleID)
	if err != nil {
		return err
	}
	if sp.Status != models.ScheduleStatusScheduled {
		return fmt.Errorf("%w: only pending schedules can be cancelled", ErrConflict)
	}
	return s.sp.Remove(ctx, sp.ID)
}

func (s *scheduleService) Upcoming(ctx context.Context, userID int64, limit int) ([]*models.ScheduledPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.sp.ListUpcoming(ctx, userID, time.Now(), limit)
}
