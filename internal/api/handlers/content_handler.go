package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rutuja303/contentforge/internal/service"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{s: s}
}

func (h *ContentHandler) CreateDraft(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.DraftCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	draft, err := h.s.CreateDraft(c.Context(), userID, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(draft)
}

func (h *ContentHandler) ListDrafts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	platform := c.Query("platform")
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 20)

	drafts, err := h.s.ListDrafts(c.Context(), userID, platform, offset, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"drafts": drafts,
	})
}

func (h *ContentHandler) UpdateDraft(c *fiber.Ctx) error {
	userID := GetUserID(c)
	draftID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid draft id",
		})
	}

	var req transfer.DraftCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	draft, err := h.s.UpdateDraft(c.Context(), userID, int64(draftID), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(draft)
}

func (h *ContentHandler) DeleteDraft(c *fiber.Ctx) error {
	userID := GetUserID(c)
	draftID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid draft id",
		})
	}

	if err := h.s.DeleteDraft(c.Context(), userID, int64(draftID)); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Draft deleted successfully",
	})
}

// PostDraft publishes a draft to its platform immediately.
func (h *ContentHandler) PostDraft(c *fiber.Ctx) error {
	userID := GetUserID(c)
	draftID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid draft id",
		})
	}

	resp, err := h.s.PostDraft(c.Context(), userID, int64(draftID))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
