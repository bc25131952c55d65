package controller

import (
	"net/http"

	"user-registry/apperror"
	"user-registry/util"

	"github.com/gofiber/fiber/v2"
)

// respondError translates a business error to its status code. Internal
// errors are logged in full and leave the handler as a generic message.
func respondError(c *fiber.Ctx, err error) error {
	code := apperror.MapErrorToStatus(err)
	if code == http.StatusInternalServerError {
		util.Logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(code).JSON(fiber.Map{"error": apperror.ErrInternal.Error()})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
