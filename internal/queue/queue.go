package queue

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueuePublish schedules a publish task to run after delay. A zero
// delay runs it as soon as a worker is free.
func EnqueuePublish(asynqClient *asynq.Client, payload PublishScheduledPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishScheduled, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	slog.Info("publish task enqueued", "scheduled_post_id", payload.ScheduledPostID, "delay", delay.String())
	return nil
}
