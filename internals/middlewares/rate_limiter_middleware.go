package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"sekolahku_backend/internals/configs"
)

// GlobalRateLimiter caps request volume per client IP across the whole API.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        configs.GetEnvInt("RATE_LIMIT_MAX", 300),
		Expiration: configs.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "too many requests, please slow down",
				"code":    "RATE_LIMITED",
			})
		},
	})
}

// LoginRateLimiter is a tighter bucket for the credential endpoint so
// password guessing burns out fast.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        configs.GetEnvInt("LOGIN_RATE_LIMIT_MAX", 10),
		Expiration: configs.GetEnvDuration("LOGIN_RATE_LIMIT_WINDOW", time.Minute),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "too many login attempts, try again later",
				"code":    "RATE_LIMITED",
			})
		},
	})
}
