package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/databases"
)

var startTime = time.Now()

// BaseRoutes registers the unauthenticated service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if databases.DB == nil {
			dbStatus = "down"
		} else if sqlDB, err := databases.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}

		status := "healthy"
		code := fiber.StatusOK
		if dbStatus != "up" {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"success": dbStatus == "up",
			"message": "health check",
			"data": fiber.Map{
				"status":   status,
				"database": dbStatus,
				"uptime":   time.Since(startTime).Round(time.Second).String(),
			},
		})
	})
}
