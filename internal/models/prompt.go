package models

import "time"

type Prompt struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	PromptText string    `db:"prompt_text" json:"prompt_text"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
