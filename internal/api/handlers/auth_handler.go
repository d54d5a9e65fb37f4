package handlers

import (
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	s service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{s: service}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	token, err := h.s.Login(req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}
