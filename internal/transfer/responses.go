package transfer

import (
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
)

type AuthResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type GenerationResponse struct {
	PromptID int64                   `json:"prompt_id"`
	Posts    []*models.GeneratedPost `json:"posts"`
}

type PublishResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	PostID  string `json:"post_id,omitempty"`
}

type ScheduleResponse struct {
	ScheduledPostID int64     `json:"scheduled_post_id"`
	Platform        string    `json:"platform"`
	ScheduledTime   time.Time `json:"scheduled_time"`
	Status          string    `json:"status"`
}

// OAuthInitiation is returned by POST /oauth/:platform/connect. When the
// user already holds a live connection Status is "connected" and no
// authorization URL is issued.
type OAuthInitiation struct {
	Status   string `json:"status"`
	AuthURL  string `json:"auth_url,omitempty"`
	State    string `json:"state,omitempty"`
	Message  string `json:"message,omitempty"`
	Platform string `json:"platform"`
}

type ConnectionInfo struct {
	Platform         string     `json:"platform"`
	PlatformUsername string     `json:"platform_username"`
	ConnectedAt      time.Time  `json:"connected_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

type DashboardAnalytics struct {
	TotalPosts     int            `json:"total_posts"`
	DraftPosts     int            `json:"draft_posts"`
	ApprovedPosts  int            `json:"approved_posts"`
	PublishedPosts int            `json:"published_posts"`
	ScheduledPosts int            `json:"scheduled_posts"`
	ByPlatform     map[string]int `json:"by_platform"`
}

type PlatformStats struct {
	Platform  string `json:"platform"`
	Total     int    `json:"total"`
	Published int    `json:"published"`
	Drafts    int    `json:"drafts"`
}

type TimelineEntry struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ScheduleOverview struct {
	Upcoming []*models.ScheduledPost `json:"upcoming"`
	Failed   []*models.ScheduledPost `json:"failed"`
}

type UploadedMedia struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Kind     string `json:"kind"`
}
