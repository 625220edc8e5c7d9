package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/utils"
)

const claimsContextKey = "authClaims"

// AuthMiddleware validates the JWT from the auth cookie or the Authorization
// header and loads its claims into the request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("token")
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// Permit rejects authenticated users whose role is not in the allowed set.
func Permit(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "forbidden")
	}
}

// CurrentClaims extracts the token claims stored by AuthMiddleware.
func CurrentClaims(c *fiber.Ctx) (*utils.Claims, bool) {
	claims, ok := c.Locals(claimsContextKey).(*utils.Claims)
	return claims, ok
}

// CurrentUserID extracts the authenticated user id from context.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := CurrentClaims(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
