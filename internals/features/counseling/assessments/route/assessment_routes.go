package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	assessmentController "konselingku_backend/internals/features/counseling/assessments/controller"
	"konselingku_backend/internals/middlewares/auth"
)

func AssessmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assessmentController.NewAssessmentController(db)

	assessments := api.Group("/assessments")

	assessments.Get("/", ctrl.List)
	assessments.Get("/:id", ctrl.GetByID)

	// Hanya konselor yang boleh mencatat dan mengubah hasil asesmen.
	assessments.Post("/",
		auth.RequireRoles("asesmen", constants.RoleCounselor),
		ctrl.Create)
	assessments.Patch("/:id",
		auth.RequireRoles("asesmen", constants.RoleCounselor),
		ctrl.Update)
	assessments.Delete("/:id",
		auth.RequireRoles("asesmen", constants.CounselorAndAdmin...),
		ctrl.Delete)
}
