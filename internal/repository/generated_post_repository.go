package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

type GeneratedPostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error)
	GetByID(ctx context.Context, id, userID int64) (*models.GeneratedPost, bool, error)
	Get(ctx context.Context, id int64) (*models.GeneratedPost, bool, error)
	List(ctx context.Context, userID int64, platform, status string, offset, limit int) ([]*models.GeneratedPost, error)
	GetByPromptAndPlatform(ctx context.Context, promptID int64, platform string) (*models.GeneratedPost, bool, error)
	UpdateContent(ctx context.Context, id int64, content, status string) error
	UpdateDraft(ctx context.Context, id int64, platform, content string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Remove(ctx context.Context, id int64) error
}

type generatedPostRepository struct {
	db *sql.DB
}

func NewGeneratedPostRepository(db *sql.DB) GeneratedPostRepository {
	return &generatedPostRepository{db: db}
}

const generatedPostColumns = "id, user_id, prompt_id, platform, content, status, created_at, updated_at"

func scanGeneratedPost(row interface{ Scan(...any) error }) (*models.GeneratedPost, error) {
	var p models.GeneratedPost
	err := row.Scan(&p.ID, &p.UserID, &p.PromptID, &p.Platform, &p.Content, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *generatedPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.GeneratedPost) (int64, error) {
	query := `INSERT INTO generated_posts (user_id, prompt_id, platform, content, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.UserID, post.PromptID, post.Platform, post.Content, post.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.UserID, post.PromptID, post.Platform, post.Content, post.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *generatedPostRepository) GetByID(ctx context.Context, id, userID int64) (*models.GeneratedPost, bool, error) {
	query := "SELECT " + generatedPostColumns + " FROM generated_posts WHERE id = $1 AND user_id = $2"
	post, err := scanGeneratedPost(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return post, true, nil
}

// Get loads a post without an ownership filter. Only the background
// publisher uses it; request handlers must go through GetByID.
func (r *generatedPostRepository) Get(ctx context.Context, id int64) (*models.GeneratedPost, bool, error) {
	query := "SELECT " + generatedPostColumns + " FROM generated_posts WHERE id = $1"
	post, err := scanGeneratedPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return post, true, nil
}

func (r *generatedPostRepository) List(ctx context.Context, userID int64, platform, status string, offset, limit int) ([]*models.GeneratedPost, error) {
	query := "SELECT " + generatedPostColumns + " FROM generated_posts WHERE user_id = $1"
	args := []any{userID}

	if platform != "" {
		args = append(args, platform)
		query += " AND platform = $2"
	}
	if status != "" {
		args = append(args, status)
		if platform != "" {
			query += " AND status = $3"
		} else {
			query += " AND status = $2"
		}
	}
	args = append(args, offset, limit)
	switch len(args) {
	case 3:
		query += " ORDER BY created_at DESC OFFSET $2 LIMIT $3"
	case 4:
		query += " ORDER BY created_at DESC OFFSET $3 LIMIT $4"
	default:
		query += " ORDER BY created_at DESC OFFSET $4 LIMIT $5"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *generatedPostRepository) GetByPromptAndPlatform(ctx context.Context, promptID int64, platform string) (*models.GeneratedPost, bool, error) {
	query := "SELECT " + generatedPostColumns + " FROM generated_posts WHERE prompt_id = $1 AND platform = $2"
	post, err := scanGeneratedPost(r.db.QueryRowContext(ctx, query, promptID, platform))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return post, true, nil
}

func (r *generatedPostRepository) UpdateContent(ctx context.Context, id int64, content, status string) error {
	query := "UPDATE generated_posts SET content = $1, status = $2, updated_at = $3 WHERE id = $4"
	_, err := r.db.ExecContext(ctx, query, content, status, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *generatedPostRepository) UpdateDraft(ctx context.Context, id int64, platform, content string) error {
	query := "UPDATE generated_posts SET platform = $1, content = $2, updated_at = $3 WHERE id = $4"
	_, err := r.db.ExecContext(ctx, query, platform, content, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *generatedPostRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := "UPDATE generated_posts SET status = $1, updated_at = $2 WHERE id = $3"
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *generatedPostRepository) Remove(ctx context.Context, id int64) error {
	query := "DELETE FROM generated_posts WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
