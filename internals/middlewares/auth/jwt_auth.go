package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
	helper "sekolahku_backend/internals/helpers"
	authhelper "sekolahku_backend/internals/helpers/auth"
)

// AuthJWT authenticates the request and hydrates the identity claim. It only
// answers "who is calling"; scope decisions stay inside the operations.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return helper.NewAuthenticationError("missing bearer token")
		}

		claim, apiErr := authhelper.VerifyAccessToken(raw, configs.JWTSecret)
		if apiErr != nil {
			return apiErr
		}

		authhelper.StoreClaim(c, claim)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
