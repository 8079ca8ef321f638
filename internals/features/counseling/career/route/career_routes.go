package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	careerController "konselingku_backend/internals/features/counseling/career/controller"
	"konselingku_backend/internals/middlewares/auth"
)

func CareerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := careerController.NewCareerController(db)

	career := api.Group("/career")

	career.Get("/", ctrl.List)
	career.Get("/latest", ctrl.Latest)
	career.Get("/:id", ctrl.GetByID)

	career.Post("/",
		auth.RequireRoles("bimbingan karir", constants.RoleCounselor),
		ctrl.Create)
	career.Patch("/:id",
		auth.RequireRoles("bimbingan karir", constants.RoleCounselor),
		ctrl.Update)
	career.Delete("/:id",
		auth.RequireRoles("bimbingan karir", constants.CounselorAndAdmin...),
		ctrl.Delete)
}
