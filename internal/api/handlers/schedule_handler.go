package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"github.com/Rutuja303/contentforge/internal/queue"
	"github.com/Rutuja303/contentforge/internal/service"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type ScheduleHandler struct {
	s           service.ScheduleService
	AsynqClient *asynq.Client
}

func NewScheduleHandler(s service.ScheduleService, asynqClient *asynq.Client) *ScheduleHandler {
	return &ScheduleHandler{s: s, AsynqClient: asynqClient}
}

func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.ScheduleCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	sp, delay, err := h.s.Create(c.Context(), userID, &req)
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

func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	userID := GetUserID(c)
	status := c.Query("status")
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 20)

	schedules, err := h.s.List(c.Context(), userID, status, offset, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"schedules": schedules,
	})
}

func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	userID := GetUserID(c)
	scheduleID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid schedule id",
		})
	}

	sp, err := h.s.Get(c.Context(), userID, int64(scheduleID))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sp)
}

// UpdateSchedule moves a pending schedule to a new time and enqueues a
// fresh task for it. The worker skips the stale task since the row's
// publish time no longer matches when it fires early.
func (h *ScheduleHandler) UpdateSchedule(c *fiber.Ctx) error {
	userID := GetUserID(c)
	scheduleID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid schedule id",
		})
	}

	var req transfer.ScheduleUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	sp, delay, err := h.s.UpdateTime(c.Context(), userID, int64(scheduleID), req.ScheduledTime)
	if err != nil {
		return errorResponse(c, err)
	}

	payload := queue.PublishScheduledPayload{ScheduledPostID: sp.ID}
	if err := queue.EnqueuePublish(h.AsynqClient, payload, delay); err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"error": "Error rescheduling post",
		})
	}
	return c.Status(fiber.StatusOK).JSON(sp)
}

func (h *ScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	userID := GetUserID(c)
	scheduleID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid schedule id",
		})
	}

	if err := h.s.Cancel(c.Context(), userID, int64(scheduleID)); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Schedule cancelled",
	})
}

func (h *ScheduleHandler) UpcomingSchedules(c *fiber.Ctx) error {
	userID := GetUserID(c)
	limit := c.QueryInt("limit", 20)

	schedules, err := h.s.Upcoming(c.Context(), userID, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"upcoming": schedules,
	})
}
