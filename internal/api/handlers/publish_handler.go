package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"github.com/Rutuja303/contentforge/internal/queue"
	"github.com/Rutuja303/contentforge/internal/service"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type PublishHandler struct {
	publisher   service.PublishService
	scheduler   service.ScheduleService
	AsynqClient *asynq.Client
}

func NewPublishHandler(publisher service.PublishService, scheduler service.ScheduleService, asynqClient *asynq.Client) *PublishHandler {
	return &PublishHandler{
		publisher:   publisher,
		scheduler:   scheduler,
		AsynqClient: asynqClient,
	}
}

// Publish posts immediately, or records a schedule when the request
// carries a future schedule_time.
func (h *PublishHandler) Publish(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.PublishRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if req.ScheduleTime != nil {
		sp, delay, err := h.scheduler.Create(c.Context(), userID, &transfer.ScheduleCreation{
			GeneratedPostID: req.GeneratedPostID,
			Platform:        req.Platform,
			ScheduledTime:   *req.ScheduleTime,
		})
		if err != nil {
			return errorResponse(c, err)
		}

		payload := queue.PublishScheduledPayload{ScheduledPostID: sp.ID}
		if err := queue.EnqueuePublish(h.AsynqClient, payload, delay); err != nil {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"error": "Error scheduling post",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(transfer.ScheduleResponse{
			ScheduledPostID: sp.ID,
			Platform:        sp.Platform,
			ScheduledTime:   sp.ScheduledTime,
			Status:          sp.Status,
		})
	}

	resp, err := h.publisher.PublishNow(c.Context(), userID, req.GeneratedPostID, req.Platform)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
