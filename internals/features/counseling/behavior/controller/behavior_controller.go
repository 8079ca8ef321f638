package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/behavior/dto"
	"konselingku_backend/internals/features/counseling/behavior/model"
	helper "konselingku_backend/internals/helpers"
	"konselingku_backend/internals/helpers/auth"
)

type BehaviorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBehaviorController(db *gorm.DB) *BehaviorController {
	return &BehaviorController{DB: db, Validate: validator.New()}
}

// GET /behavior?student_id=&category=&date_from=&date_to=
func (ctrl *BehaviorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BehaviorModel{}).Preload("Student")

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun siswa belum tertaut ke data siswa")
		}
		q = q.Where("behavior_student_id = ?", studentID)
	} else if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("behavior_student_id = ?", id)
	}

	if cat := c.Query("category"); cat != "" {
		q = q.Where("behavior_category = ?", cat)
	}
	if from := c.Query("date_from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus berformat YYYY-MM-DD")
		}
		q = q.Where("behavior_date >= ?", d)
	}
	if to := c.Query("date_to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus berformat YYYY-MM-DD")
		}
		q = q.Where("behavior_date < ?", d.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung catatan perilaku")
	}

	var records []model.BehaviorModel
	if err := q.Order("behavior_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan perilaku")
	}

	return helper.JsonList(c, "ok", dto.FromBehaviorModels(records),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /behavior/summary?student_id=
func (ctrl *BehaviorController) Summary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib dan harus UUID")
	}

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		ownID, err := auth.GetStudentIDFromToken(c)
		if err != nil || ownID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Rekap ini bukan milik Anda")
		}
	}

	var records []model.BehaviorModel
	if err := ctrl.DB.Where("behavior_student_id = ?", studentID).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan perilaku")
	}

	return helper.JsonOK(c, "ok", dto.Summarize(studentID, records))
}

// GET /behavior/:id
func (ctrl *BehaviorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.BehaviorModel
	if err := ctrl.DB.Preload("Student").First(&m, "behavior_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan perilaku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "ok", dto.FromBehaviorModel(m))
}

// POST /behavior
func (ctrl *BehaviorController) Create(c *fiber.Ctx) error {
	var req dto.CreateBehaviorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	m := req.ToModel(userID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan catatan perilaku")
	}

	return helper.JsonCreated(c, "Catatan perilaku berhasil disimpan", dto.FromBehaviorModel(m))
}

// PATCH /behavior/:id
func (ctrl *BehaviorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateBehaviorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"behavior_id": id})
	}

	tx := ctrl.DB.Model(&model.BehaviorModel{}).
		Where("behavior_id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah catatan perilaku")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan perilaku tidak ditemukan")
	}

	var updated model.BehaviorModel
	ctrl.DB.Preload("Student").First(&updated, "behavior_id = ?", id)
	return helper.JsonUpdated(c, "Catatan perilaku berhasil diubah", dto.FromBehaviorModel(updated))
}

// DELETE /behavior/:id
func (ctrl *BehaviorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Delete(&model.BehaviorModel{}, "behavior_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus catatan perilaku")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan perilaku tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Catatan perilaku berhasil dihapus", fiber.Map{"behavior_id": id})
}
