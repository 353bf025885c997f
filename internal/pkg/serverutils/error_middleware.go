package serverutils

import (
	"errors"
	"fmt"
	"runtime/debug"

	"notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware classifies every error escaping a handler into a
// JSON {error: string} response. A single request failure never takes the
// process down.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"panic": fmt.Sprintf("%v", r),
					"stack": string(debug.Stack()),
				})
				_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": ErrInternal.Error(),
				})
			}
		}()

		err := c.Next()
		if err == nil {
			return nil
		}

		// Known business errors
		if errors.Is(err, ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrUnauthorized.Error()})
		}
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrInvalidCredentials.Error()})
		}
		if errors.Is(err, ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrUsernameTaken.Error()})
		}
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": ErrNotFound.Error()})
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"path":   c.Path(),
			"method": c.Method(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternal.Error()})
	}
}
