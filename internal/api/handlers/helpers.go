package handlers

import (
	"errors"
	"log/slog"

	"github.com/Rakifeller/idea-approval/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

// fail maps domain errors onto status codes; anything unrecognized is a
// store failure and returns 500 with the underlying message.
func fail(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Error()})
	}

	var is *apperr.InvalidStateError
	if errors.As(err, &is) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": is.Error()})
	}

	slog.Error(err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func badJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Unable to parse json",
	})
}
