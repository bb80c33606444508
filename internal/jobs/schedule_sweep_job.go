package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Rutuja303/contentforge/internal/queue"
	"github.com/Rutuja303/contentforge/internal/repository"
)

// ScheduleSweepJob re-enqueues due schedules whose queue task was
// lost, for example after a Redis flush or a restart that dropped
// pending tasks. The publish path skips schedules that already ran,
// so sweeping an already-enqueued row is harmless.
type ScheduleSweepJob struct {
	sp          repository.ScheduledPostRepository
	asynqClient *asynq.Client
}

func NewScheduleSweepJob(sp repository.ScheduledPostRepository, asynqClient *asynq.Client) *ScheduleSweepJob {
	return &ScheduleSweepJob{sp: sp, asynqClient: asynqClient}
}

func (j *ScheduleSweepJob) Run() {
	ctx := context.Background()

	due, err := j.sp.ListDue(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, sp := range due {
		payload := queue.PublishScheduledPayload{ScheduledPostID: sp.ID}
		if err := queue.EnqueuePublish(j.asynqClient, payload, 0); err != nil {
			slog.Info(err.Error())
		}
	}
}
