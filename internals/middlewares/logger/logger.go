package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Setup installs the request log line. One line per request with latency,
// status, and the request id set by the request-id middleware.
func Setup(app *fiber.App) {
	app.Use(logger.New(logger.Config{
		Format:     "[HTTP] ${time} | ${status} | ${latency} | ${method} ${path} | rid=${locals:request_id}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
	}))
}
