package handlers

import (
	"io"

	"github.com/Rakifeller/idea-approval/internal/models"
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/Rakifeller/idea-approval/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type CharacterHandler struct {
	s service.CharacterService
}

func NewCharacterHandler(service service.CharacterService) *CharacterHandler {
	return &CharacterHandler{s: service}
}

func (h *CharacterHandler) ListCharacters(c *fiber.Ctx) error {
	characters, err := h.s.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	if characters == nil {
		characters = []*models.InfluencerCharacter{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"characters": characters,
	})
}

func (h *CharacterHandler) CreateCharacter(c *fiber.Ctx) error {
	var cc transfer.CharacterCreation
	if err := c.BodyParser(&cc); err != nil {
		return badJSON(c)
	}

	character, err := h.s.Create(c.Context(), &cc)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"character": character,
	})
}

func (h *CharacterHandler) GetCharacter(c *fiber.Ctx) error {
	character, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"character": character,
	})
}

func (h *CharacterHandler) UpdateCharacter(c *fiber.Ctx) error {
	var cc transfer.CharacterCreation
	if err := c.BodyParser(&cc); err != nil {
		return badJSON(c)
	}

	character, err := h.s.Update(c.Context(), c.Params("id"), &cc)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"character": character,
	})
}

func (h *CharacterHandler) CharacterStats(c *fiber.Ctx) error {
	stats, err := h.s.Stats(c.Context(), c.Query("character_id"))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"stats": stats,
	})
}

func (h *CharacterHandler) CharacterContent(c *fiber.Ctx) error {
	content, err := h.s.Content(c.Context(), c.Query("character_id"))
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

func (h *CharacterHandler) UploadReferenceImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to open file",
		})
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}

	url, err := h.s.UploadReferenceImage(c.Context(), c.Params("id"), fileBytes)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":             true,
		"reference_image_url": url,
	})
}
