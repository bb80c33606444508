package models

import (
	"database/sql"
	"time"
)

// PlatformConnection stores OAuth credentials pairing a user with a
// social platform account. Tokens are AES-GCM encrypted at rest.
type PlatformConnection struct {
	ID               int64          `db:"id" json:"id"`
	UserID           int64          `db:"user_id" json:"user_id"`
	Platform         string         `db:"platform" json:"platform"`
	AccessToken      string         `db:"access_token" json:"-"`
	RefreshToken     sql.NullString `db:"refresh_token" json:"-"`
	ExpiresAt        sql.NullTime   `db:"expires_at" json:"expires_at"`
	PlatformUserID   sql.NullString `db:"platform_user_id" json:"platform_user_id"`
	PlatformUsername sql.NullString `db:"platform_username" json:"platform_username"`
	IsActive         bool           `db:"is_active" json:"is_active"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}
