package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/classrooms/controller"
)

func ClassroomRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db)

	classrooms := api.Group("/classrooms")
	classrooms.Get("/", ctl.List)
	classrooms.Post("/", ctl.Create)
	classrooms.Get("/:id", ctl.GetByID)
	classrooms.Put("/:id", ctl.Update)
	classrooms.Delete("/:id", ctl.Delete)
	classrooms.Get("/:id/students", ctl.ListStudents)
}
