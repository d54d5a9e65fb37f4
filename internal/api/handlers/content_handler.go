package handlers

import (
	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) ListReadyContent(c *fiber.Ctx) error {
	content, err := h.s.ListReady(c.Context())
	if err != nil {
		return fail(c, err)
	}
	if content == nil {
		content = []*models.ApprovedContent{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"content": content,
	})
}
