package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	studentController "konselingku_backend/internals/features/school/students/controller"
	"konselingku_backend/internals/middlewares/auth"
)

// StudentRoutes mendaftarkan seluruh endpoint siswa.
// Semua endpoint berada di belakang JWT; mutasi hanya untuk counselor/admin.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students")

	students.Get("/", ctrl.List)
	students.Get("/deleted",
		auth.RequireRoles("manajemen siswa", constants.CounselorAndAdmin...),
		ctrl.ListDeleted)
	students.Get("/:id", ctrl.GetByID)

	students.Post("/",
		auth.RequireRoles("manajemen siswa", constants.CounselorAndAdmin...),
		ctrl.Create)
	students.Patch("/:id",
		auth.RequireRoles("manajemen siswa", constants.CounselorAndAdmin...),
		ctrl.Update)
	students.Delete("/:id",
		auth.RequireRoles("manajemen siswa", constants.CounselorAndAdmin...),
		ctrl.Delete)
	students.Post("/:id/restore",
		auth.RequireRoles("manajemen siswa", constants.CounselorAndAdmin...),
		ctrl.Restore)
}
