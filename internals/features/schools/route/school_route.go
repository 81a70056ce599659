package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/schools/controller"
)

// SchoolRoutes registers the tenant directory under an authenticated group.
// Role checks live inside the operations, not here.
func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)

	schools := api.Group("/schools")
	schools.Get("/", ctl.List)
	schools.Post("/", ctl.Create)
	schools.Get("/:id", ctl.GetByID)
	schools.Put("/:id", ctl.Update)
	schools.Delete("/:id", ctl.Delete)
	schools.Get("/:id/stats", ctl.Stats)
}
