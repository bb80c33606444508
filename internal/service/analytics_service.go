package service

import (
	"context"
	"sort"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context, userID int64) (*transfer.DashboardAnalytics, error)
	PlatformStats(ctx context.Context, userID int64, days int) ([]transfer.PlatformStats, error)
	Timeline(ctx context.Context, userID int64, days int) ([]transfer.TimelineEntry, error)
	ScheduleOverview(ctx context.Context, userID int64) (*transfer.ScheduleOverview, error)
}

type analyticsService struct {
	ar repository.AnalyticsRepository
	sp repository.ScheduledPostRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository, sp repository.ScheduledPostRepository) AnalyticsService {
	return &analyticsService{ar: ar, sp: sp}
}

func (s *analyticsService) Dashboard(ctx context.Context, userID int64) (*transfer.DashboardAnalytics, error) {
	total, err := s.ar.CountPosts(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	drafts, err := s.ar.CountPosts(ctx, userID, models.PostStatusDraft)
	if err != nil {
		return nil, err
	}
	approved, err := s.ar.CountPosts(ctx, userID, models.PostStatusApproved)
	if err != nil {
		return nil, err
	}
	published, err := s.ar.CountPosts(ctx, userID, models.PostStatusPublished)
	if err != nil {
		return nil, err
	}
	scheduled, err := s.ar.CountScheduled(ctx, userID)
	if err != nil {
		return nil, err
	}
	byPlatform, err := s.ar.PlatformBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &transfer.DashboardAnalytics{
		TotalPosts:     total,
		DraftPosts:     drafts,
		ApprovedPosts:  approved,
		PublishedPosts: published,
		ScheduledPosts: scheduled,
		ByPlatform:     byPlatform,
	}, nil
}

func (s *analyticsService) PlatformStats(ctx context.Context, userID int64, days int) ([]transfer.PlatformStats, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	breakdown, err := s.ar.PlatformStatusBreakdown(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats := make([]transfer.PlatformStats, 0, len(breakdown))
	for platform, byStatus := range breakdown {
		entry := transfer.PlatformStats{
			Platform:  platform,
			Published: byStatus[models.PostStatusPublished],
			Drafts:    byStatus[models.PostStatusDraft],
		}
		for _, count := range byStatus {
			entry.Total += count
		}
		stats = append(stats, entry)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Platform < stats[j].Platform })
	return stats, nil
}

func (s *analyticsService) Timeline(ctx context.Context, userID int64, days int) ([]transfer.TimelineEntry, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	posts, err := s.ar.RecentPosts(ctx, userID, since, 1000)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int)
	for _, post := range posts {
		byDay[post.CreatedAt.Format("2006-01-02")]++
	}

	entries := make([]transfer.TimelineEntry, 0, len(byDay))
	for date, count := range byDay {
		entries = append(entries, transfer.TimelineEntry{Date: date, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

func (s *analyticsService) ScheduleOverview(ctx context.Context, userID int64) (*transfer.ScheduleOverview, error) {
	upcoming, err := s.sp.ListUpcoming(ctx, userID, time.Now(), 20)
	if err != nil {
		return nil, err
	}
	failed, err := s.ar.FailedSchedules(ctx, userID, 20)
	if err != nil {
		return nil, err
	}
	return &transfer.ScheduleOverview{Upcoming: upcoming, Failed: failed}, nil
}
