package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Rutuja303/contentforge/internal/ai"
	"github.com/Rutuja303/contentforge/internal/models"
)

func newTestGenerationService(t *testing.T) (GenerationService, *fakeTxRunner, *fakePromptRepo, *fakeGeneratedPostRepo) {
	t.Helper()
	tx := &fakeTxRunner{}
	prompts := newFakePromptRepo()
	posts := newFakeGeneratedPostRepo()
	// empty provider chain, so content comes from the templates
	s := NewGenerationService(tx, ai.NewGenerator(nil, nil), nil, prompts, posts)
	return s, tx, prompts, posts
}

func TestGeneratePersistsDraftRows(t *testing.T) {
	s, tx, prompts, posts := newTestGenerationService(t)

	resp, err := s.Generate(context.Background(), 1, "Announce our new product", []string{"twitter", "email"}, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.PromptID == 0 {
		t.Fatal("expected a persisted prompt id")
	}
	if len(resp.Posts) != 2 {
		t.Fatalf("expected 2 draft rows, got %d", len(resp.Posts))
	}

	prompt, exists, _ := prompts.GetByID(context.Background(), resp.PromptID, 1)
	if !exists {
		t.Fatal("prompt row was not persisted")
	}
	if prompt.PromptText != "Announce our new product" {
		t.Errorf("got prompt text %q", prompt.PromptText)
	}

	byPlatform := make(map[string]*models.GeneratedPost)
	for _, post := range resp.Posts {
		if post.Status != models.PostStatusDraft {
			t.Errorf("%s post status = %q, want draft", post.Platform, post.Status)
		}
		if !post.PromptID.Valid || post.PromptID.Int64 != resp.PromptID {
			t.Errorf("%s post not linked to prompt: %+v", post.Platform, post.PromptID)
		}
		if _, exists, _ := posts.GetByID(context.Background(), post.ID, 1); !exists {
			t.Errorf("%s post row was not persisted", post.Platform)
		}
		byPlatform[post.Platform] = post
	}

	if tw, ok := byPlatform["twitter"]; !ok {
		t.Error("missing twitter draft")
	} else if utf8.RuneCountInString(tw.Content) > 300 {
		t.Errorf("twitter content too long: %d runes", utf8.RuneCountInString(tw.Content))
	}
	if em, ok := byPlatform["email"]; !ok {
		t.Error("missing email draft")
	} else if !strings.HasPrefix(em.Content, "Subject: Exciting Announcement") {
		t.Errorf("unexpected email content: %q", em.Content)
	}

	if tx.commits != 1 {
		t.Errorf("expected one committed transaction, got %d", tx.commits)
	}
}

func TestGenerateDeduplicatesPlatforms(t *testing.T) {
	s, _, _, _ := newTestGenerationService(t)

	resp, err := s.Generate(context.Background(), 1, "quarterly update", []string{"Twitter", " twitter ", "EMAIL"}, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(resp.Posts) != 2 {
		t.Fatalf("expected 2 posts after dedupe, got %d", len(resp.Posts))
	}
}

func TestGenerateValidation(t *testing.T) {
	s, tx, prompts, _ := newTestGenerationService(t)

	cases := []struct {
		name      string
		prompt    string
		platforms []string
	}{
		{"empty prompt", "   ", []string{"twitter"}},
		{"no platforms", "hello", nil},
		{"unsupported platform", "hello", []string{"myspace"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Generate(context.Background(), 1, tc.prompt, tc.platforms, nil); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
	if tx.commits != 0 || len(prompts.prompts) != 0 {
		t.Error("rejected requests must not write anything")
	}
}

func TestGenerateRollsBackWhenDraftSaveFails(t *testing.T) {
	s, tx, _, posts := newTestGenerationService(t)
	posts.createErr = errors.New("insert failed")

	_, err := s.Generate(context.Background(), 1, "hello", []string{"twitter"}, nil)
	if err == nil {
		t.Fatal("expected the save failure to surface")
	}
	if tx.rollbacks != 1 {
		t.Errorf("expected one rollback, got %d", tx.rollbacks)
	}
	if tx.commits != 0 {
		t.Errorf("failing unit must not commit, got %d commits", tx.commits)
	}
}

func TestRegenerateReplacesExistingDraft(t *testing.T) {
	s, _, prompts, posts := newTestGenerationService(t)

	resp, err := s.Generate(context.Background(), 1, "team training week", []string{"twitter"}, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	original := resp.Posts[0]
	posts.UpdateStatus(context.Background(), original.ID, models.PostStatusApproved)

	again, err := s.Regenerate(context.Background(), 1, resp.PromptID, []string{"twitter", "email"})
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	if len(again.Posts) != 2 {
		t.Fatalf("expected twitter replacement plus new email row, got %d", len(again.Posts))
	}
	for _, post := range again.Posts {
		if post.Status != models.PostStatusDraft {
			t.Errorf("%s post should be back in draft, got %q", post.Platform, post.Status)
		}
	}

	if _, exists, _ := prompts.GetByID(context.Background(), resp.PromptID, 1); !exists {
		t.Error("regenerate must keep the original prompt row")
	}
	if refreshed, _, _ := posts.Get(context.Background(), original.ID); refreshed.Status != models.PostStatusDraft {
		t.Error("existing draft row should be reused, not left approved")
	}
}

func TestRegenerateUnknownPrompt(t *testing.T) {
	s, _, _, _ := newTestGenerationService(t)

	if _, err := s.Regenerate(context.Background(), 1, 99, []string{"twitter"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
