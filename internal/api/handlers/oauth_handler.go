package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	config "github.com/Rutuja303/contentforge/configs"
	"github.com/Rutuja303/contentforge/internal/service"
)

type OAuthHandler struct {
	cfg config.Config
	s   service.OAuthService
}

func NewOAuthHandler(cfg config.Config, s service.OAuthService) *OAuthHandler {
	return &OAuthHandler{cfg: cfg, s: s}
}

func (h *OAuthHandler) Connect(c *fiber.Ctx) error {
	userID := GetUserID(c)
	platform := c.Params("platform")

	initiation, err := h.s.Initiate(c.Context(), userID, platform)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(initiation)
}

// Callback is hit by the platform's redirect, so it carries no session
// cookie; the user id travels in the state value.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	platform := c.Params("platform")
	code := c.Query("code")
	state := c.Query("state")

	conn, err := h.s.Callback(c.Context(), platform, code, state)
	if err != nil {
		return errorResponse(c, err)
	}

	redirect := fmt.Sprintf("%s/connections?connected=%s", h.cfg.FrontendURL, conn.Platform)
	return c.Redirect(redirect, fiber.StatusFound)
}

func (h *OAuthHandler) ListConnections(c *fiber.Ctx) error {
	userID := GetUserID(c)

	connections, err := h.s.ListConnections(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"connections": connections,
	})
}

func (h *OAuthHandler) Disconnect(c *fiber.Ctx) error {
	userID := GetUserID(c)
	platform := c.Params("platform")

	if err := h.s.Disconnect(c.Context(), userID, platform); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("%s disconnected", platform),
	})
}
