package transfer

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PromptCreation struct {
	PromptText string `json:"prompt_text"`
}

// GenerateRequest is the JSON body of POST /prompts/generate. The
// multipart variant carries the same fields as form values plus files.
type GenerateRequest struct {
	Prompt    string   `json:"prompt"`
	Platforms []string `json:"platforms"`
}

type RegenerateRequest struct {
	Platforms []string `json:"platforms"`
}

type DraftCreation struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
}

type PostUpdate struct {
	Content string `json:"content"`
}

type ImproveRequest struct {
	Feedback string `json:"feedback"`
}

type ScheduleCreation struct {
	GeneratedPostID int64     `json:"generated_post_id"`
	Platform        string    `json:"platform"`
	ScheduledTime   time.Time `json:"scheduled_time"`
}

type ScheduleUpdate struct {
	ScheduledTime time.Time `json:"scheduled_time"`
}

type PublishRequest struct {
	GeneratedPostID int64      `json:"generated_post_id"`
	Platform        string     `json:"platform"`
	ScheduleTime    *time.Time `json:"schedule_time,omitempty"`
}

type SettingsUpdate struct {
	Notifications map[string]any `json:"notifications"`
	Privacy       map[string]any `json:"privacy"`
}
