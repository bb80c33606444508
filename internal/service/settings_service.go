package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

// UserSettingsBlob is the stored settings document. Missing sections
// fall back to the defaults below.
type UserSettingsBlob struct {
	Notifications map[string]any `json:"notifications"`
	Privacy       map[string]any `json:"privacy"`
}

func defaultNotifications() map[string]any {
	return map[string]any{
		"email_notifications": true,
		"push_notifications":  true,
		"content_approvals":   true,
		"scheduled_posts":     true,
		"analytics_reports":   false,
		"security_alerts":     true,
	}
}

func defaultPrivacy() map[string]any {
	return map[string]any{
		"profile_visibility": "public",
		"content_visibility": "public",
		"analytics_sharing":  false,
		"data_collection":    true,
	}
}

type SettingsService interface {
	Get(ctx context.Context, userID int64) (*UserSettingsBlob, error)
	Update(ctx context.Context, userID int64, su *transfer.SettingsUpdate) (*UserSettingsBlob, error)
}

type settingsService struct {
	us repository.UserSettingsRepository
}

func NewSettingsService(us repository.UserSettingsRepository) SettingsService {
	return &settingsService{us: us}
}

func (s *settingsService) Get(ctx context.Context, userID int64) (*UserSettingsBlob, error) {
	stored, exists, err := s.us.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	blob := UserSettingsBlob{}
	if exists && len(stored.Settings) > 0 {
		if err := json.Unmarshal(stored.Settings, &blob); err != nil {
			slog.Info(err.Error())
		}
	}
	if blob.Notifications == nil {
		blob.Notifications = defaultNotifications()
	}
	if blob.Privacy == nil {
		blob.Privacy = defaultPrivacy()
	}
	return &blob, nil
}

func (s *settingsService) Update(ctx context.Context, userID int64, su *transfer.SettingsUpdate) (*UserSettingsBlob, error) {
	blob := UserSettingsBlob{
		Notifications: su.Notifications,
		Privacy:       su.Privacy,
	}
	if blob.Notifications == nil {
		blob.Notifications = map[string]any{}
	}
	if blob.Privacy == nil {
		blob.Privacy = map[string]any{}
	}

	raw, err := json.Marshal(blob)
	if err != nil {
		return nil, err
	}
	if err := s.us.Upsert(ctx, userID, raw); err != nil {
		return nil, err
	}
	return &blob, nil
}
