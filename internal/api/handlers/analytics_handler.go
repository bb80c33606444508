package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rutuja303/contentforge/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: s}
}

func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	userID := GetUserID(c)

	dashboard, err := h.s.Dashboard(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dashboard)
}

func (h *AnalyticsHandler) PlatformStats(c *fiber.Ctx) error {
	userID := GetUserID(c)
	days := c.QueryInt("days", 30)

	stats, err := h.s.PlatformStats(c.Context(), userID, days)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"platforms": stats,
	})
}

func (h *AnalyticsHandler) Timeline(c *fiber.Ctx) error {
	userID := GetUserID(c)
	days := c.QueryInt("days", 30)

	timeline, err := h.s.Timeline(c.Context(), userID, days)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"timeline": timeline,
	})
}

func (h *AnalyticsHandler) ScheduleOverview(c *fiber.Ctx) error {
	userID := GetUserID(c)

	overview, err := h.s.ScheduleOverview(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(overview)
}
