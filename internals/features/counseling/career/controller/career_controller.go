package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/career/dto"
	"konselingku_backend/internals/features/counseling/career/model"
	helper "konselingku_backend/internals/helpers"
	"konselingku_backend/internals/helpers/auth"
)

type CareerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCareerController(db *gorm.DB) *CareerController {
	return &CareerController{DB: db, Validate: validator.New()}
}

// GET /career?student_id=&interest=
func (ctrl *CareerController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CareerModel{}).
		Preload("Student").Preload("Counselor")

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun siswa belum tertaut ke data siswa")
		}
		q = q.Where("career_student_id = ?", studentID)
	} else if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("career_student_id = ?", id)
	}

	if interest := c.Query("interest"); interest != "" {
		q = q.Where("career_interests::text ILIKE ?", "%"+interest+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung catatan karir")
	}

	var entries []model.CareerModel
	if err := q.Order("career_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan karir")
	}

	return helper.JsonList(c, "ok", dto.FromCareerModels(entries),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /career/latest?student_id=
// Mengambil catatan bimbingan karir terbaru satu siswa.
func (ctrl *CareerController) Latest(c *fiber.Ctx) error {
	var studentID uuid.UUID

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		ownID, err := auth.GetStudentIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun siswa belum tertaut ke data siswa")
		}
		studentID = ownID
	} else {
		id, err := uuid.Parse(c.Query("student_id"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib dan harus UUID")
		}
		studentID = id
	}

	var m model.CareerModel
	if err := ctrl.DB.Preload("Student").Preload("Counselor").
		Where("career_student_id = ?", studentID).
		Order("career_date DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa belum punya catatan karir")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan karir")
	}

	return helper.JsonOK(c, "ok", dto.FromCareerModel(m))
}

// GET /career/:id
func (ctrl *CareerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CareerModel
	if err := ctrl.DB.Preload("Student").Preload("Counselor").
		First(&m, "career_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan karir tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil || m.CareerStudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Catatan ini bukan milik Anda")
		}
	}

	return helper.JsonOK(c, "ok", dto.FromCareerModel(m))
}

// POST /career
func (ctrl *CareerController) Create(c *fiber.Ctx) error {
	var req dto.CreateCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan catatan karir")
	}

	return helper.JsonCreated(c, "Catatan karir berhasil disimpan", dto.FromCareerModel(m))
}

// PATCH /career/:id
func (ctrl *CareerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateCareerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"career_id": id})
	}

	tx := ctrl.DB.Model(&model.CareerModel{}).
		Where("career_id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah catatan karir")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan karir tidak ditemukan")
	}

	var updated model.CareerModel
	ctrl.DB.Preload("Student").Preload("Counselor").First(&updated, "career_id = ?", id)
	return helper.JsonUpdated(c, "Catatan karir berhasil diubah", dto.FromCareerModel(updated))
}

// DELETE /career/:id
func (ctrl *CareerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Delete(&model.CareerModel{}, "career_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus catatan karir")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan karir tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Catatan karir berhasil dihapus", fiber.Map{"career_id": id})
}
