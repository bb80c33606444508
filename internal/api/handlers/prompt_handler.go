package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Rutuja303/contentforge/internal/service"
	"github.com/Rutuja303/contentforge/internal/transfer"
)

type PromptHandler struct {
	s service.GenerationService
}

func NewPromptHandler(s service.GenerationService) *PromptHandler {
	return &PromptHandler{s: s}
}

// Generate accepts either a JSON body or a multipart form with files.
// The multipart form carries "prompt", "platforms" (JSON array or
// comma-separated), and any number of "files" entries.
func (h *PromptHandler) Generate(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var prompt string
	var platforms []string
	var files []*multipart.FileHeader

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to parse form",
			})
		}
		prompt = c.FormValue("prompt")
		platforms = parsePlatformsField(c.FormValue("platforms"))
		files = form.File["files"]
	} else {
		var req transfer.GenerateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to parse request body",
			})
		}
		prompt = req.Prompt
		platforms = req.Platforms
	}

	resp, err := h.s.Generate(c.Context(), userID, prompt, platforms, files)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PromptHandler) Regenerate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	promptID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid prompt id",
		})
	}

	var req transfer.RegenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	resp, err := h.s.Regenerate(c.Context(), userID, int64(promptID), req.Platforms)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PromptHandler) ListPrompts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 20)

	prompts, err := h.s.ListPrompts(c.Context(), userID, offset, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"prompts": prompts,
	})
}

func parsePlatformsField(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var platforms []string
		if err := json.Unmarshal([]byte(raw), &platforms); err == nil {
			return platforms
		}
	}
	return strings.Split(raw, ",")
}
