package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Message writes a JSON error envelope with the given status code.
func Message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// InvalidData writes the 400 envelope for a payload that failed validation.
func InvalidData(c *fiber.Ctx, msg string, errs []ErrorResponse) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": msg,
		"errors":  errs,
	})
}

// NotFound writes the 404 envelope for a missing resource.
func NotFound(c *fiber.Ctx, what string) error {
	return Message(c, fiber.StatusNotFound, what+" not found")
}

// ParseID reads the ":id" route parameter. A non-numeric id yields a 400
// from fiber's params parser.
func ParseID(c *fiber.Ctx) (int, error) {
	return c.ParamsInt("id")
}
