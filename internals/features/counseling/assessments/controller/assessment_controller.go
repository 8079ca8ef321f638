package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/assessments/dto"
	"konselingku_backend/internals/features/counseling/assessments/model"
	helper "konselingku_backend/internals/helpers"
	"konselingku_backend/internals/helpers/auth"
)

type AssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db, Validate: validator.New()}
}

// GET /assessments?student_id=&risk_level=&instrument=
// Data asesmen bersifat sensitif: siswa hanya melihat miliknya sendiri.
func (ctrl *AssessmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AssessmentModel{}).
		Preload("Student").Preload("Counselor")

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun siswa belum tertaut ke data siswa")
		}
		q = q.Where("assessment_student_id = ?", studentID)
	} else if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("assessment_student_id = ?", id)
	}

	if risk := c.Query("risk_level"); risk != "" {
		q = q.Where("assessment_risk_level = ?", risk)
	}
	if instrument := c.Query("instrument"); instrument != "" {
		q = q.Where("assessment_instrument = ?", instrument)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung asesmen")
	}

	var assessments []model.AssessmentModel
	if err := q.Order("assessment_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&assessments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar asesmen")
	}

	return helper.JsonList(c, "ok", dto.FromAssessmentModels(assessments),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /assessments/:id
func (ctrl *AssessmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssessmentModel
	if err := ctrl.DB.Preload("Student").Preload("Counselor").
		First(&m, "assessment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asesmen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil || m.AssessmentStudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Asesmen ini bukan milik Anda")
		}
	}

	return helper.JsonOK(c, "ok", dto.FromAssessmentModel(m))
}

// POST /assessments
func (ctrl *AssessmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan asesmen")
	}

	return helper.JsonCreated(c, "Asesmen berhasil disimpan", dto.FromAssessmentModel(m))
}

// PATCH /assessments/:id
func (ctrl *AssessmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"assessment_id": id})
	}

	tx := ctrl.DB.Model(&model.AssessmentModel{}).
		Where("assessment_id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah asesmen")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asesmen tidak ditemukan")
	}

	var updated model.AssessmentModel
	ctrl.DB.Preload("Student").Preload("Counselor").First(&updated, "assessment_id = ?", id)
	return helper.JsonUpdated(c, "Asesmen berhasil diubah", dto.FromAssessmentModel(updated))
}

// DELETE /assessments/:id
func (ctrl *AssessmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Delete(&model.AssessmentModel{}, "assessment_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus asesmen")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asesmen tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Asesmen berhasil dihapus", fiber.Map{"assessment_id": id})
}
