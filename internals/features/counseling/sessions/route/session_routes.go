package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	sessionController "konselingku_backend/internals/features/counseling/sessions/controller"
	"konselingku_backend/internals/middlewares/auth"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	sessions := api.Group("/sessions")

	sessions.Get("/", ctrl.List)
	sessions.Get("/calendar", ctrl.Calendar)
	sessions.Get("/export/csv",
		auth.RequireRoles("ekspor konseling", constants.StaffAndAbove...),
		ctrl.ExportCSV)
	sessions.Get("/export/pdf",
		auth.RequireRoles("ekspor konseling", constants.StaffAndAbove...),
		ctrl.ExportPDF)
	sessions.Get("/:id", ctrl.GetByID)

	sessions.Post("/", ctrl.Create)
	sessions.Patch("/:id", ctrl.Update)
	sessions.Delete("/:id",
		auth.RequireRoles("manajemen sesi", constants.CounselorAndAdmin...),
		ctrl.Delete)

	sessions.Post("/:id/approve",
		auth.RequireRoles("persetujuan sesi", constants.RoleCounselor),
		ctrl.Approve)
	sessions.Post("/:id/reject",
		auth.RequireRoles("persetujuan sesi", constants.RoleCounselor),
		ctrl.Reject)
}
