package models

import (
	"database/sql"
	"time"
)

type ScheduledPost struct {
	ID              int64          `db:"id" json:"id"`
	GeneratedPostID int64          `db:"generated_post_id" json:"generated_post_id"`
	Platform        string         `db:"platform" json:"platform"`
	ScheduledTime   time.Time      `db:"scheduled_time" json:"scheduled_time"`
	Status          string         `db:"status" json:"status"`
	PublishedAt     sql.NullTime   `db:"published_at" json:"published_at"`
	ErrorMessage    sql.NullString `db:"error_message" json:"error_message"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusPublished = "published"
	ScheduleStatusFailed    = "failed"
)
