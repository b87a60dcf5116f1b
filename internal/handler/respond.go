package handler

import (
	"errors"

	"go-stocktrack/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// writeError maps domain errors to 4xx responses with a readable message.
// Anything unrecognized is an infrastructure failure and stays opaque.
func writeError(c *fiber.Ctx, err error) error {
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": nf.Error()})
	}

	var is *apperr.InsufficientStockError
	if errors.As(err, &is) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":   "not enough stock available",
			"available": is.Available,
			"requested": is.Requested,
		})
	}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": ve.Message,
			"details": ve.Details,
		})
	}

	if apperr.IsCallerError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
}

// parseUUID parses a path parameter as a UUID.
func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// actorID extracts the authenticated user's id set by the auth middleware.
func actorID(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
