package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/service"
)

// TokenRefreshJob renews platform tokens that expire within the next
// half hour, so scheduled publishes don't fail on stale credentials.
type TokenRefreshJob struct {
	pc    repository.PlatformConnectionRepository
	oauth service.OAuthService
}

func NewTokenRefreshJob(pc repository.PlatformConnectionRepository, oauth service.OAuthService) *TokenRefreshJob {
	return &TokenRefreshJob{pc: pc, oauth: oauth}
}

func (j *TokenRefreshJob) RefreshTokens() {
	ctx := context.Background()

	connections, err := j.pc.ListExpiring(ctx, time.Now().Add(30*time.Minute))
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, conn := range connections {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(conn *models.PlatformConnection) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := j.oauth.Refresh(ctx, conn); err != nil {
				slog.Info("unable to refresh tokens", "platform", conn.Platform, "user_id", conn.UserID)
			}
		}(conn)
	}

	wg.Wait()
}
