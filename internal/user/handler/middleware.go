package handler

import (
	"errors"
	"strings"

	apperrors "github.com/andriyanto/user-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const localsUserIDKey = "authUserID"

// AuthenticatedUserID returns the subject id stored by RequireAuth. Empty
// outside an authenticated route.
func AuthenticatedUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserIDKey).(string)
	return id
}

// RequireAuth verifies the bearer token, checks the subject still exists and
// is active, and stores the subject id in the request locals.
func (h *UserHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		userID, err := h.tokens.Verify(token)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token expired"})
			}

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		user, err := h.userService.GetByID(c.Context(), userID)
		if err != nil {
			// A vanished subject is an auth failure; anything else (a repo
			// outage, say) keeps its own status.
			if errors.Is(err, apperrors.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
			}

			return respondError(c, err)
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(localsUserIDKey, userID)

		return c.Next()
	}
}
