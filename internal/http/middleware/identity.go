package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"servidoc/internal/auth"
)

// UserIDLocalKey is the context locals key carrying the authenticated
// user's id when a valid token accompanied the request.
const UserIDLocalKey = "user_id"

// Identity parses an optional Bearer token and stores the caller's user
// id in context locals so the logger can attribute requests. No route is
// gated: an absent or invalid token just leaves the request anonymous.
func Identity(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if tok, ok := strings.CutPrefix(header, "Bearer "); ok {
			if id, err := issuer.Parse(tok); err == nil {
				c.Locals(UserIDLocalKey, id.UserID)
			}
		}
		return c.Next()
	}
}
