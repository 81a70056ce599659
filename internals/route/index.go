package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomRoute "sekolahku_backend/internals/features/classrooms/route"
	schoolRoute "sekolahku_backend/internals/features/schools/route"
	studentRoute "sekolahku_backend/internals/features/students/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. The /a group authenticates
// only; whether a caller may touch a given school is decided inside each
// operation by the access resolver.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	protected := api.Group("/a", authMiddleware.AuthJWT())
	schoolRoute.SchoolRoutes(protected, db)
	classroomRoute.ClassroomRoutes(protected, db)
	studentRoute.StudentRoutes(protected, db)
}
