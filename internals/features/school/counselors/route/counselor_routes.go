package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	counselorController "konselingku_backend/internals/features/school/counselors/controller"
	"konselingku_backend/internals/middlewares/auth"
)

func CounselorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := counselorController.NewCounselorController(db)

	counselors := api.Group("/counselors")

	counselors.Get("/", ctrl.List)
	counselors.Get("/:id", ctrl.GetByID)

	counselors.Post("/",
		auth.RequireRoles("manajemen konselor", constants.RoleAdmin),
		ctrl.Create)
	counselors.Patch("/:id",
		auth.RequireRoles("manajemen konselor", constants.RoleAdmin),
		ctrl.Update)
	counselors.Delete("/:id",
		auth.RequireRoles("manajemen konselor", constants.RoleAdmin),
		ctrl.Delete)
}
