package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	u, ok := r.users[id]
	return u, ok, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeGeneratedPostRepo struct {
	posts     map[int64]*models.GeneratedPost
	nextID    int64
	createErr error
}

func newFakeGeneratedPostRepo() *fakeGeneratedPostRepo {
	return &fakeGeneratedPostRepo{posts: make(map[int64]*models.GeneratedPost), nextID: 1}
}

func (r *fakeGeneratedPostRepo) Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	post.ID = r.nextID
	r.nextID++
	post.CreatedAt = time.Now()
	r.posts[post.ID] = post
	return post.ID, nil
}

func (r *fakeGeneratedPostRepo) GetByID(ctx context.Context, id, userID int64) (*models.GeneratedPost, bool, error) {
	p, ok := r.posts[id]
	if !ok || p.UserID != userID {
		return nil, false, nil
	}
	return p, true, nil
}

func (r *fakeGeneratedPostRepo) Get(ctx context.Context, id int64) (*models.GeneratedPost, bool, error) {
	p, ok := r.posts[id]
	return p, ok, nil
}

func (r *fakeGeneratedPostRepo) List(ctx context.Context, userID int64, platform, status string, offset, limit int) ([]*models.GeneratedPost, error) {
	var out []*models.GeneratedPost
	for _, p := range r.posts {
		if p.UserID != userID {
			continue
		}
		if platform != "" && p.Platform != platform {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeGeneratedPostRepo) GetByPromptAndPlatform(ctx context.Context, promptID int64, platform string) (*models.GeneratedPost, bool, error) {
	for _, p := range r.posts {
		if p.PromptID.Valid && p.PromptID.Int64 == promptID && p.Platform == platform {
			return p, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeGeneratedPostRepo) UpdateContent(ctx context.Context, id int64, content, status string) error {
	if p, ok := r.posts[id]; ok {
		p.Content = content
		p.Status = status
	}
	return nil
}

func (r *fakeGeneratedPostRepo) UpdateDraft(ctx context.Context, id int64, platform, content string) error {
	if p, ok := r.posts[id]; ok {
		p.Platform = platform
		p.Content = content
	}
	return nil
}

func (r *fakeGeneratedPostRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if p, ok := r.posts[id]; ok {
		p.Status = status
	}
	return nil
}

func (r *fakeGeneratedPostRepo) Remove(ctx context.Context, id int64) error {
	delete(r.posts, id)
	return nil
}

type fakeScheduledPostRepo struct {
	schedules map[int64]*models.ScheduledPost
	owners    map[int64]int64 // schedule id -> user id
	nextID    int64
}

func newFakeScheduledPostRepo() *fakeScheduledPostRepo {
	return &fakeScheduledPostRepo{
		schedules: make(map[int64]*models.ScheduledPost),
		owners:    make(map[int64]int64),
		nextID:    1,
	}
}

func (r *fakeScheduledPostRepo) Create(ctx context.Context, sp *models.ScheduledPost) (int64, error) {
	sp.ID = r.nextID
	r.nextID++
	sp.CreatedAt = time.Now()
	r.schedules[sp.ID] = sp
	return sp.ID, nil
}

func (r *fakeScheduledPostRepo) GetByID(ctx context.Context, id, userID int64) (*models.ScheduledPost, bool, error) {
	sp, ok := r.schedules[id]
	if !ok {
		return nil, false, nil
	}
	if owner, tracked := r.owners[id]; tracked && owner != userID {
		return nil, false, nil
	}
	return sp, true, nil
}

func (r *fakeScheduledPostRepo) Get(ctx context.Context, id int64) (*models.ScheduledPost, bool, error) {
	sp, ok := r.schedules[id]
	return sp, ok, nil
}

func (r *fakeScheduledPostRepo) ExistsForPostAndPlatform(ctx context.Context, generatedPostID int64, platform string) (bool, error) {
	for _, sp := range r.schedules {
		if sp.GeneratedPostID == generatedPostID && sp.Platform == platform {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeScheduledPostRepo) ListByUserID(ctx context.Context, userID int64, status string, offset, limit int) ([]*models.ScheduledPost, error) {
	var out []*models.ScheduledPost
	for id, sp := range r.schedules {
		if owner, tracked := r.owners[id]; tracked && owner != userID {
			continue
		}
		if status != "" && sp.Status != status {
			continue
		}
		out = append(out, sp)
	}
	return out, nil
}

func (r *fakeScheduledPostRepo) ListUpcoming(ctx context.Context, userID int64, after time.Time, limit int) ([]*models.ScheduledPost, error) {
	var out []*models.ScheduledPost
	for id, sp := range r.schedules {
		if owner, tracked := r.owners[id]; tracked && owner != userID {
			continue
		}
		if sp.Status == models.ScheduleStatusScheduled && sp.ScheduledTime.After(after) {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (r *fakeScheduledPostRepo) ListDue(ctx context.Context, before time.Time) ([]*models.ScheduledPost, error) {
	var out []*models.ScheduledPost
	for _, sp := range r.schedules {
		if sp.Status == models.ScheduleStatusScheduled && sp.ScheduledTime.Before(before) {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (r *fakeScheduledPostRepo) UpdateTime(ctx context.Context, id int64, scheduledTime time.Time) error {
	if sp, ok := r.schedules[id]; ok {
		sp.ScheduledTime = scheduledTime
	}
	return nil
}

func (r *fakeScheduledPostRepo) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	if sp, ok := r.schedules[id]; ok {
		sp.Status = models.ScheduleStatusPublished
		sp.PublishedAt = sql.NullTime{Time: publishedAt, Valid: true}
	}
	return nil
}

func (r *fakeScheduledPostRepo) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	if sp, ok := r.schedules[id]; ok {
		sp.Status = models.ScheduleStatusFailed
		sp.ErrorMessage = sql.NullString{String: errorMessage, Valid: true}
	}
	return nil
}

func (r *fakeScheduledPostRepo) Remove(ctx context.Context, id int64) error {
	delete(r.schedules, id)
	return nil
}

type fakeConnectionRepo struct {
	connections map[int64]*models.PlatformConnection
	nextID      int64
	creates     int
	updates     int
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{connections: make(map[int64]*models.PlatformConnection), nextID: 1}
}

func (r *fakeConnectionRepo) Create(ctx context.Context, pc *models.PlatformConnection) (int64, error) {
	pc.ID = r.nextID
	r.nextID++
	pc.CreatedAt = time.Now()
	r.connections[pc.ID] = pc
	r.creates++
	return pc.ID, nil
}

func (r *fakeConnectionRepo) GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.PlatformConnection, bool, error) {
	for _, pc := range r.connections {
		if pc.UserID == userID && pc.Platform == platform {
			return pc, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeConnectionRepo) GetActive(ctx context.Context, userID int64, platform string) (*models.PlatformConnection, bool, error) {
	for _, pc := range r.connections {
		if pc.UserID == userID && pc.Platform == platform && pc.IsActive {
			return pc, true, nil
		}
	}
	return nil, false, nil
}

func (r *fakeConnectionRepo) ListActiveByUserID(ctx context.Context, userID int64) ([]*models.PlatformConnection, error) {
	var out []*models.PlatformConnection
	for _, pc := range r.connections {
		if pc.UserID == userID && pc.IsActive {
			out = append(out, pc)
		}
	}
	return out, nil
}

func (r *fakeConnectionRepo) ListExpiring(ctx context.Context, before time.Time) ([]*models.PlatformConnection, error) {
	var out []*models.PlatformConnection
	for _, pc := range r.connections {
		if pc.IsActive && pc.RefreshToken.Valid && pc.ExpiresAt.Valid && pc.ExpiresAt.Time.Before(before) {
			out = append(out, pc)
		}
	}
	return out, nil
}

func (r *fakeConnectionRepo) UpdateTokens(ctx context.Context, pc *models.PlatformConnection) error {
	r.connections[pc.ID] = pc
	r.updates++
	return nil
}

func (r *fakeConnectionRepo) Deactivate(ctx context.Context, id int64) error {
	if pc, ok := r.connections[id]; ok {
		pc.IsActive = false
	}
	return nil
}

type fakeSettingsRepo struct {
	settings map[int64]json.RawMessage
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]json.RawMessage)}
}

func (r *fakeSettingsRepo) GetByUserID(ctx context.Context, userID int64) (*models.UserSettings, bool, error) {
	raw, ok := r.settings[userID]
	if !ok {
		return nil, false, nil
	}
	return &models.UserSettings{UserID: userID, Settings: raw}, true, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, userID int64, settings json.RawMessage) error {
	r.settings[userID] = settings
	return nil
}

type fakePromptRepo struct {
	prompts map[int64]*models.Prompt
	nextID  int64
}

func newFakePromptRepo() *fakePromptRepo {
	return &fakePromptRepo{prompts: make(map[int64]*models.Prompt), nextID: 1}
}

func (r *fakePromptRepo) Create(ctx context.Context, tx *sql.Tx, prompt *models.Prompt) (int64, error) {
	prompt.ID = r.nextID
	r.nextID++
	prompt.CreatedAt = time.Now()
	r.prompts[prompt.ID] = prompt
	return prompt.ID, nil
}

func (r *fakePromptRepo) GetByID(ctx context.Context, id, userID int64) (*models.Prompt, bool, error) {
	p, ok := r.prompts[id]
	if !ok || p.UserID != userID {
		return nil, false, nil
	}
	return p, true, nil
}

func (r *fakePromptRepo) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*models.Prompt, error) {
	var out []*models.Prompt
	for _, p := range r.prompts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePromptRepo) Remove(ctx context.Context, id int64) error {
	delete(r.prompts, id)
	return nil
}

// fakeTxRunner hands the unit of work a nil tx, which the repositories
// treat as the base connection. It counts outcomes so tests can assert
// that a failing unit rolled back instead of committing.
type fakeTxRunner struct {
	commits   int
	rollbacks int
}

func (r *fakeTxRunner) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := fn(nil); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}
