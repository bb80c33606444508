package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

type ScheduledPostRepository interface {
	Create(ctx context.Context, sp *models.ScheduledPost) (int64, error)
	GetByID(ctx context.Context, id, userID int64) (*models.ScheduledPost, bool, error)
	Get(ctx context.Context, id int64) (*models.ScheduledPost, bool, error)
	ExistsForPostAndPlatform(ctx context.Context, generatedPostID int64, platform string) (bool, error)
	ListByUserID(ctx context.Context, userID int64, status string, offset, limit int) ([]*models.ScheduledPost, error)
	ListUpcoming(ctx context.Context, userID int64, after time.Time, limit int) ([]*models.ScheduledPost, error)
	ListDue(ctx context.Context, before time.Time) ([]*models.ScheduledPost, error)
	UpdateTime(ctx context.Context, id int64, scheduledTime time.Time) error
	MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error
	MarkFailed(ctx context.Context, id int64, errorMessage string) error
	Remove(ctx context.Context, id int64) error
}

type scheduledPostRepository struct {
	db *sql.DB
}

func NewScheduledPostRepository(db *sql.DB) ScheduledPostRepository {
	return &scheduledPostRepository{db: db}
}

const scheduledPostColumns = "id, generated_post_id, platform, scheduled_time, status, published_at, error_message, created_at"

func scanScheduledPost(row interface{ Scan(...any) error }) (*models.ScheduledPost, error) {
	var sp models.ScheduledPost
	err := row.Scan(&sp.ID, &sp.GeneratedPostID, &sp.Platform, &sp.ScheduledTime, &sp.Status, &sp.PublishedAt, &sp.ErrorMessage, &sp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *scheduledPostRepository) Create(ctx context.Context, sp *models.ScheduledPost) (int64, error) {
	query := `INSERT INTO scheduled_posts (generated_post_id, platform, scheduled_time, status)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, sp.GeneratedPostID, sp.Platform, sp.ScheduledTime, sp.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

// GetByID resolves ownership through the generated post the schedule
// belongs to.
func (r *scheduledPostRepository) GetByID(ctx context.Context, id, userID int64) (*models.ScheduledPost, bool, error) {
	query := `SELECT sp.id, sp.generated_post_id, sp.platform, sp.scheduled_time, sp.status, sp.published_at, sp.error_message, sp.created_at
		FROM scheduled_posts sp
		JOIN generated_posts gp ON gp.id = sp.generated_post_id
		WHERE sp.id = $1 AND gp.user_id = $2`
	sp, err := scanScheduledPost(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return sp, true, nil
}

func (r *scheduledPostRepository) Get(ctx context.Context, id int64) (*models.ScheduledPost, bool, error) {
	query := "SELECT " + scheduledPostColumns + " FROM scheduled_posts WHERE id = $1"
	sp, err := scanScheduledPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return sp, true, nil
}

func (r *scheduledPostRepository) ExistsForPostAndPlatform(ctx context.Context, generatedPostID int64, platform string) (bool, error) {
	query := "SELECT 1 FROM scheduled_posts WHERE generated_post_id = $1 AND platform = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, generatedPostID, platform).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

func (r *scheduledPostRepository) ListByUserID(ctx context.Context, userID int64, status string, offset, limit int) ([]*models.ScheduledPost, error) {
	query := `SELECT sp.id, sp.generated_post_id, sp.platform, sp.scheduled_time, sp.status, sp.published_at, sp.error_message, sp.created_at
		FROM scheduled_posts sp
		JOIN generated_posts gp ON gp.id = sp.generated_post_id
		WHERE gp.user_id = $1`
	args := []any{userID}

	if status != "" {
		args = append(args, status)
		query += " AND sp.status = $2"
	}
	args = append(args, offset, limit)
	if status != "" {
		query += " ORDER BY sp.scheduled_time OFFSET $3 LIMIT $4"
	} else {
		query += " ORDER BY sp.scheduled_time OFFSET $2 LIMIT $3"
	}

	return r.queryScheduledPosts(ctx, query, args...)
}

func (r *scheduledPostRepository) ListUpcoming(ctx context.Context, userID int64, after time.Time, limit int) ([]*models.ScheduledPost, error) {
	query := `SELECT sp.id, sp.generated_post_id, sp.platform, sp.scheduled_time, sp.status, sp.published_at, sp.error_message, sp.created_at
		FROM scheduled_posts sp
		JOIN generated_posts gp ON gp.id = sp.generated_post_id
		WHERE gp.user_id = $1 AND sp.status = 'scheduled' AND sp.scheduled_time > $2
		ORDER BY sp.scheduled_time LIMIT $3`
	return r.queryScheduledPosts(ctx, query, userID, after, limit)
}

// ListDue backs the cron sweep that re-enqueues schedules whose queue
// task was lost.
func (r *scheduledPostRepository) ListDue(ctx context.Context, before time.Time) ([]*models.ScheduledPost, error) {
	query := "SELECT " + scheduledPostColumns + ` FROM scheduled_posts
		WHERE status = 'scheduled' AND scheduled_time <= $1
		ORDER BY scheduled_time`
	return r.queryScheduledPosts(ctx, query, before)
}

func (r *scheduledPostRepository) queryScheduledPosts(ctx context.Context, query string, args ...any) ([]*models.ScheduledPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ScheduledPost
	for rows.Next() {
		sp, err := scanScheduledPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, sp)
	}
	return posts, rows.Err()
}

func (r *scheduledPostRepository) UpdateTime(ctx context.Context, id int64, scheduledTime time.Time) error {
	query := "UPDATE scheduled_posts SET scheduled_time = $1 WHERE id = $2"
	_, err := r.db.ExecContext(ctx, query, scheduledTime, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	query := "UPDATE scheduled_posts SET status = 'published', published_at = $1, error_message = NULL WHERE id = $2"
	_, err := r.db.ExecContext(ctx, query, publishedAt, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	query := "UPDATE scheduled_posts SET status = 'failed', error_message = $1 WHERE id = $2"
	_, err := r.db.ExecContext(ctx, query, errorMessage, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) Remove(ctx context.Context, id int64) error {
	query := "DELETE FROM scheduled_posts WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
