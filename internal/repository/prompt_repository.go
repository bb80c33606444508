package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Rutuja303/contentforge/internal/models"
)

type PromptRepository interface {
	Create(ctx context.Context, tx *sql.Tx, prompt *models.Prompt) (int64, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Prompt, bool, error)
	ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*models.Prompt, error)
	Remove(ctx context.Context, id int64) error
}

type promptRepository struct {
	db *sql.DB
}

func NewPromptRepository(db *sql.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, tx *sql.Tx, prompt *models.Prompt) (int64, error) {
	query := "INSERT INTO prompts (user_id, prompt_text) VALUES ($1, $2) RETURNING id"

	var err error
	var id int64

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, prompt.UserID, prompt.PromptText).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, prompt.UserID, prompt.PromptText).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *promptRepository) GetByID(ctx context.Context, id, userID int64) (*models.Prompt, bool, error) {
	var p models.Prompt
	query := "SELECT id, user_id, prompt_text, created_at FROM prompts WHERE id = $1 AND user_id = $2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&p.ID, &p.UserID, &p.PromptText, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &p, true, nil
}

func (r *promptRepository) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*models.Prompt, error) {
	query := `SELECT id, user_id, prompt_text, created_at FROM prompts
		WHERE user_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var prompts []*models.Prompt
	for rows.Next() {
		var p models.Prompt
		if err := rows.Scan(&p.ID, &p.UserID, &p.PromptText, &p.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		prompts = append(prompts, &p)
	}
	return prompts, rows.Err()
}

func (r *promptRepository) Remove(ctx context.Context, id int64) error {
	query := "DELETE FROM prompts WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
