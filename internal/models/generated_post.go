package models

import (
	"database/sql"
	"time"
)

type GeneratedPost struct {
	ID        int64         `db:"id" json:"id"`
	UserID    int64         `db:"user_id" json:"user_id"`
	PromptID  sql.NullInt64 `db:"prompt_id" json:"prompt_id"`
	Platform  string        `db:"platform" json:"platform"`
	Content   string        `db:"content" json:"content"`
	Status    string        `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusApproved  = "approved"
	PostStatusRejected  = "rejected"
	PostStatusPublished = "published"
)
