package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/students/controller"
)

// StudentRoutes registers the roster. Every membership write behind these
// paths goes through the enrollment engine.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctl.List)
	students.Post("/", ctl.Create)
	students.Get("/:id", ctl.GetByID)
	students.Put("/:id", ctl.Update)
	students.Post("/:id/transfer", ctl.Transfer)
	students.Patch("/:id/status", ctl.ChangeStatus)
	students.Delete("/:id", ctl.Withdraw)
}
