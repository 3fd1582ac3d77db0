package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests that carry no valid caller identity. JWTAuth
// lets anonymous requests through; routes that need a user mount this after it.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UIDFromLocals(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
