package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// identityKey is the Locals slot the middleware stores verified claims under.
const identityKey = "identity"

// Middleware guards task endpoints. An absent Authorization header is handled
// as its own case before any parsing; malformed headers and failed
// verification both stop the request with 401, so no protected handler ever
// runs with an unverified identity.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Autorização negada")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		c.Locals(identityKey, claims)
		return c.Next()
	}
}

// CurrentUser returns the claims the middleware attached to the request.
func CurrentUser(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(identityKey).(*Claims)
	return claims, ok
}
