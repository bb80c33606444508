package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandlePublishScheduledTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishScheduledPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	if err := q.publisher.PublishScheduled(ctx, payload.ScheduledPostID); err != nil {
		slog.Info("scheduled publish failed", "scheduled_post_id", payload.ScheduledPostID, "error", err.Error())
		return err
	}
	return nil
}
