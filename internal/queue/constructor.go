package queue

import (
	"github.com/Rutuja303/contentforge/internal/service"
)

type Queue struct {
	publisher service.PublishService
}

func NewQueue(publisher service.PublishService) *Queue {
	return &Queue{publisher: publisher}
}

const TaskTypePublishScheduled = "publish:scheduled"

type PublishScheduledPayload struct {
	ScheduledPostID int64 `json:"scheduled_post_id"`
}
