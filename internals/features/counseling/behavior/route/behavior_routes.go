package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	behaviorController "konselingku_backend/internals/features/counseling/behavior/controller"
	"konselingku_backend/internals/middlewares/auth"
)

func BehaviorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := behaviorController.NewBehaviorController(db)

	behavior := api.Group("/behavior")

	behavior.Get("/", ctrl.List)
	behavior.Get("/summary", ctrl.Summary)
	behavior.Get("/:id", ctrl.GetByID)

	behavior.Post("/",
		auth.RequireRoles("catatan perilaku", constants.StaffAndAbove...),
		ctrl.Create)
	behavior.Patch("/:id",
		auth.RequireRoles("catatan perilaku", constants.StaffAndAbove...),
		ctrl.Update)
	behavior.Delete("/:id",
		auth.RequireRoles("catatan perilaku", constants.CounselorAndAdmin...),
		ctrl.Delete)
}
