package handlers

import (
	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type IdeaHandler struct {
	s service.IdeaService
	n service.Notifier
}

func NewIdeaHandler(service service.IdeaService, notifier service.Notifier) *IdeaHandler {
	return &IdeaHandler{s: service, n: notifier}
}

func (h *IdeaHandler) ListIdeas(c *fiber.Ctx) error {
	status := c.Query("status", models.IdeaStatusPending)

	ideas, err := h.s.List(c.Context(), status)
	if err != nil {
		return fail(c, err)
	}
	if ideas == nil {
		ideas = []*models.ContentIdea{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ideas": ideas,
	})
}

func (h *IdeaHandler) ApproveIdea(c *fiber.Ctx) error {
	var req transfer.IdeaReview
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	idea, err := h.s.Approve(c.Context(), req.IdeaID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"idea":    idea,
	})
}

func (h *IdeaHandler) RejectIdea(c *fiber.Ctx) error {
	var req transfer.IdeaReview
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	idea, err := h.s.Reject(c.Context(), req.IdeaID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"idea":    idea,
	})
}

func (h *IdeaHandler) AssignInfluencer(c *fiber.Ctx) error {
	var req transfer.IdeaAssignment
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	idea, err := h.s.AssignCharacter(c.Context(), req.IdeaID, req.CharacterID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"idea": idea,
	})
}

// GenerateTrendIdeas asks the workflow engine to mine TikTok trends. Unlike
// the detached notifications, this call is the whole operation, so its
// failure is surfaced.
func (h *IdeaHandler) GenerateTrendIdeas(c *fiber.Ctx) error {
	var req transfer.TrendScanRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}
	if req.Niche == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "niche is required",
		})
	}

	if err := h.n.TriggerTrendScan(c.Context(), req.Niche, req.Country); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unable to reach trend engine",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
