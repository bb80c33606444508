package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

type UserSettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserSettings, bool, error)
	Upsert(ctx context.Context, userID int64, settings json.RawMessage) error
}

type userSettingsRepository struct {
	db *sql.DB
}

func NewUserSettingsRepository(db *sql.DB) UserSettingsRepository {
	return &userSettingsRepository{db: db}
}

func (r *userSettingsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserSettings, bool, error) {
	var us models.UserSettings
	query := "SELECT id, user_id, settings, created_at, updated_at FROM user_settings WHERE user_id = $1"
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&us.ID, &us.UserID, &us.Settings, &us.CreatedAt, &us.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &us, true, nil
}

func (r *userSettingsRepository) Upsert(ctx context.Context, userID int64, settings json.RawMessage) error {
	query := `
		INSERT INTO user_settings (user_id, settings)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET settings = EXCLUDED.settings, updated_at = $3
	`
	_, err := r.db.ExecContext(ctx, query, userID, settings, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
