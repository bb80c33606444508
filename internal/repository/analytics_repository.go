package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

// AnalyticsRepository holds the aggregation queries behind the
// dashboard endpoints.
type AnalyticsRepository interface {
	CountPosts(ctx context.Context, userID int64, status string) (int, error)
	CountScheduled(ctx context.Context, userID int64) (int, error)
	PlatformBreakdown(ctx context.Context, userID int64) (map[string]int, error)
	PlatformStatusBreakdown(ctx context.Context, userID int64, since time.Time) (map[string]map[string]int, error)
	RecentPosts(ctx context.Context, userID int64, since time.Time, limit int) ([]*models.GeneratedPost, error)
	FailedSchedules(ctx context.Context, userID int64, limit int) ([]*models.ScheduledPost, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountPosts(ctx context.Context, userID int64, status string) (int, error) {
	query := "SELECT COUNT(*) FROM generated_posts WHERE user_id = $1"
	args := []any{userID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) CountScheduled(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM scheduled_posts sp
		JOIN generated_posts gp ON gp.id = sp.generated_post_id
		WHERE gp.user_id = $1 AND sp.status = 'scheduled'`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) PlatformBreakdown(ctx context.Context, userID int64) (map[string]int, error) {
	query := `SELECT platform, COUNT(*) FROM generated_posts
		WHERE user_id = $1 GROUP BY platform`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	breakdown := make(map[string]int)
	for rows.Next() {
		var platform string
		var count int
		if err := rows.Scan(&platform, &count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		breakdown[platform] = count
	}
	return breakdown, rows.Err()
}

func (r *analyticsRepository) PlatformStatusBreakdown(ctx context.Context, userID int64, since time.Time) (map[string]map[string]int, error) {
	query := `SELECT platform, status, COUNT(*) FROM generated_posts
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY platform, status`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]map[string]int)
	for rows.Next() {
		var platform, status string
		var count int
		if err := rows.Scan(&platform, &status, &count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		if stats[platform] == nil {
			stats[platform] = make(map[string]int)
		}
		stats[platform][status] = count
	}
	return stats, rows.Err()
}

func (r *analyticsRepository) RecentPosts(ctx context.Context, userID int64, since time.Time, limit int) ([]*models.GeneratedPost, error) {
	query := "SELECT " + generatedPostColumns + ` FROM generated_posts
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, userID, since, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.GeneratedPost
	for rows.Next() {
		post, err := scanGeneratedPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *analyticsRepository) FailedSchedules(ctx context.Context, userID int64, limit int) ([]*models.ScheduledPost, error) {
	query := `SELECT sp.id, sp.generated_post_id, sp.platform, sp.scheduled_time, sp.status, sp.published_at, sp.error_message, sp.created_at
		FROM scheduled_posts sp
		JOIN generated_posts gp ON gp.id = sp.generated_post_id
		WHERE gp.user_id = $1 AND sp.status = 'failed'
		ORDER BY sp.created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
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
