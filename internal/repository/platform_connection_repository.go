package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

type PlatformConnectionRepository interface {
	Create(ctx context.Context, pc *models.PlatformConnection) (int64, error)
	GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.PlatformConnection, bool, error)
	GetActive(ctx context.Context, userID int64, platform string) (*models.PlatformConnection, bool, error)
	ListActiveByUserID(ctx context.Context, userID int64) ([]*models.PlatformConnection, error)
	ListExpiring(ctx context.Context, before time.Time) ([]*models.PlatformConnection, error)
	UpdateTokens(ctx context.Context, pc *models.PlatformConnection) error
	Deactivate(ctx context.Context, id int64) error
}

type platformConnectionRepository struct {
	db *sql.DB
}

func NewPlatformConnectionRepository(db *sql.DB) PlatformConnectionRepository {
	return &platformConnectionRepository{db: db}
}

const connectionColumns = "id, user_id, platform, access_token, refresh_token, expires_at, platform_user_id, platform_username, is_active, created_at, updated_at"

func scanConnection(row interface{ Scan(...any) error }) (*models.PlatformConnection, error) {
	var pc models.PlatformConnection
	err := row.Scan(&pc.ID, &pc.UserID, &pc.Platform, &pc.AccessToken, &pc.RefreshToken,
		&pc.ExpiresAt, &pc.PlatformUserID, &pc.PlatformUsername, &pc.IsActive, &pc.CreatedAt, &pc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *platformConnectionRepository) Create(ctx context.Context, pc *models.PlatformConnection) (int64, error) {
	query := `INSERT INTO platform_connections
		(user_id, platform, access_token, refresh_token, expires_at, platform_user_id, platform_username, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		pc.UserID,
		pc.Platform,
		pc.AccessToken,
		pc.RefreshToken,
		pc.ExpiresAt,
		pc.PlatformUserID,
		pc.PlatformUsername,
		pc.IsActive,
	).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *platformConnectionRepository) GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.PlatformConnection, bool, error) {
	query := "SELECT " + connectionColumns + " FROM platform_connections WHERE user_id = $1 AND platform = $2"
	pc, err := scanConnection(r.db.QueryRowContext(ctx, query, userID, platform))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return pc, true, nil
}

func (r *platformConnectionRepository) GetActive(ctx context.Context, userID int64, platform string) (*models.PlatformConnection, bool, error) {
	query := "SELECT " + connectionColumns + " FROM platform_connections WHERE user_id = $1 AND platform = $2 AND is_active = TRUE"
	pc, err := scanConnection(r.db.QueryRowContext(ctx, query, userID, platform))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return pc, true, nil
}

func (r *platformConnectionRepository) ListActiveByUserID(ctx context.Context, userID int64) ([]*models.PlatformConnection, error) {
	query := "SELECT " + connectionColumns + " FROM platform_connections WHERE user_id = $1 AND is_active = TRUE"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var connections []*models.PlatformConnection
	for rows.Next() {
		pc, err := scanConnection(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		connections = append(connections, pc)
	}
	return connections, rows.Err()
}

func (r *platformConnectionRepository) ListExpiring(ctx context.Context, before time.Time) ([]*models.PlatformConnection, error) {
	query := "SELECT " + connectionColumns + ` FROM platform_connections
		WHERE is_active = TRUE AND refresh_token IS NOT NULL AND expires_at IS NOT NULL AND expires_at <= $1`
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var connections []*models.PlatformConnection
	for rows.Next() {
		pc, err := scanConnection(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		connections = append(connections, pc)
	}
	return connections, rows.Err()
}

// UpdateTokens overwrites the token fields of the row identified by ID
// and reactivates it.
func (r *platformConnectionRepository) UpdateTokens(ctx context.Context, pc *models.PlatformConnection) error {
	query := `
		UPDATE platform_connections
		SET access_token = $1,
			refresh_token = $2,
			expires_at = $3,
			platform_user_id = $4,
			platform_username = $5,
			is_active = TRUE,
			updated_at = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query, pc.AccessToken, pc.RefreshToken, pc.ExpiresAt,
		pc.PlatformUserID, pc.PlatformUsername, time.Now(), pc.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *platformConnectionRepository) Deactivate(ctx context.Context, id int64) error {
	query := "UPDATE platform_connections SET is_active = FALSE, updated_at = $1 WHERE id = $2"
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
