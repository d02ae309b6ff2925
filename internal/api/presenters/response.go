package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes message next to the payload. A fiber.Map payload is
// merged into the top level; anything else is placed under "data".
func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	body := fiber.Map{"message": message}
	switch d := data.(type) {
	case nil:
	case fiber.Map:
		for k, v := range d {
			body[k] = v
		}
	default:
		body["data"] = d
	}
	return c.Status(statusCode).JSON(body)
}

// ErrorResponse writes {error, details}. details is left out for server
// errors so driver messages never reach the client.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil && statusCode < fiber.StatusInternalServerError {
		body["details"] = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}
