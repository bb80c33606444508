package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

func newTestScheduleService(t *testing.T) (ScheduleService, *fakeGeneratedPostRepo, *fakeScheduledPostRepo) {
	t.Helper()
	posts := newFakeGeneratedPostRepo()
	schedules := newFakeScheduledPostRepo()
	return NewScheduleService(posts, schedules), posts, schedules
}

func createDraft(t *testing.T, posts *fakeGeneratedPostRepo, userID int64, platform string) int64 {
	t.Helper()
	id, err := posts.Create(context.Background(), nil, &models.GeneratedPost{
		UserID:   userID,
		Platform: platform,
		Content:  "draft content",
		Status:   models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("creating draft: %v", err)
	}
	return id
}

func TestCreateSchedule(t *testing.T) {
	s, posts, _ := newTestScheduleService(t)
	postID := createDraft(t, posts, 1, "twitter")

	when := time.Now().Add(2 * time.Hour)
	sp, delay, err := s.Create(context.Background(), 1, &transfer.ScheduleCreation{
		GeneratedPostID: postID,
		Platform:        "twitter",
		ScheduledTime:   when,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sp.Status != models.ScheduleStatusScheduled {
		t.Errorf("got status %s", sp.Status)
	}
	if delay <= time.Hour || delay > 2*time.Hour {
		t.Errorf("unexpected delay %s", delay)
	}
}

func TestCreateScheduleDuplicateConflicts(t *testing.T) {
	s, posts, _ := newTestScheduleService(t)
	postID := createDraft(t, posts, 1, "twitter")

	sc := &transfer.ScheduleCreation{
		GeneratedPostID: postID,
		Platform:        "twitter",
		ScheduledTime:   time.Now().Add(time.Hour),
	}
	if _, _, err := s.Create(context.Background(), 1, sc); err != nil {
		t.Fatalf("first schedule failed: %v", err)
	}
	if _, _, err := s.Create(context.Background(), 1, sc); !errors.Is(err, ErrConflict) {
		t.Fatalf("second schedule should conflict, got %v", err)
	}
}

func TestCreateScheduleValidation(t *testing.T) {
	s, posts, _ := newTestScheduleService(t)
	postID := createDraft(t, posts, 1, "twitter")

	t.Run("past time", func(t *testing.T) {
		_, _, err := s.Create(context.Background(), 1, &transfer.ScheduleCreation{
			GeneratedPostID: postID,
			Platform:        "twitter",
			ScheduledTime:   time.Now().Add(-time.Minute),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("unknown platform", func(t *testing.T) {
		_, _, err := s.Create(context.Background(), 1, &transfer.ScheduleCreation{
			GeneratedPostID: postID,
			Platform:        "myspace",
			ScheduledTime:   time.Now().Add(time.Hour),
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("post owned by someone else", func(t *testing.T) {
		_, _, err := s.Create(context.Background(), 2, &transfer.ScheduleCreation{
			GeneratedPostID: postID,
			Platform:        "twitter",
			ScheduledTime:   time.Now().Add(time.Hour),
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestUpdateTimeOnlyWhilePending(t *testing.T) {
	s, posts, schedules := newTestScheduleService(t)
	postID := createDraft(t, posts, 1, "linkedin")

	sp, _, err := s.Create(context.Background(), 1, &transfer.ScheduleCreation{
		GeneratedPostID: postID,
		Platform:        "linkedin",
		ScheduledTime:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTime := time.Now().Add(3 * time.Hour)
	if _, _, err := s.UpdateTime(context.Background(), 1, sp.ID, newTime); err != nil {
		t.Fatalf("UpdateTime failed: %v", err)
	}

	schedules.MarkPublished(context.Background(), sp.ID, time.Now())
	if _, _, err := s.UpdateTime(context.Background(), 1, sp.ID, newTime.Add(time.Hour)); !errors.Is(err, ErrConflict) {
		t.Fatalf("published schedule should refuse a move, got %v", err)
	}
}

func TestCancelOnlyWhilePending(t *testing.T) {
	s, posts, schedules := newTestScheduleService(t)
	postID := createDraft(t, posts, 1, "facebook")

	sp, _, err := s.Create(context.Background(), 1, &transfer.ScheduleCreation{
		GeneratedPostID: postID,
		Platform:        "facebook",
		ScheduledTime:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	schedules.MarkFailed(context.Background(), sp.ID, "upstream error")
	if err := s.Cancel(context.Background(), 1, sp.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("failed schedule should refuse cancellation, got %v", err)
	}
}
