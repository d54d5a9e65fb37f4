package handlers

import (
	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	s service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{s: service}
}

func (h *ScheduleHandler) CreateScheduledPost(c *fiber.Ctx) error {
	var pc transfer.SchedulePostCreation
	if err := c.BodyParser(&pc); err != nil {
		return badJSON(c)
	}

	post, postedImmediately, err := h.s.Create(c.Context(), &pc)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":            true,
		"scheduled_post":     post,
		"posted_immediately": postedImmediately,
	})
}

func (h *ScheduleHandler) ListScheduledPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	if posts == nil {
		posts = []*models.ScheduledPost{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"scheduled_posts": posts,
	})
}

func (h *ScheduleHandler) DeleteScheduledPost(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.s.Remove(c.Context(), id); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
