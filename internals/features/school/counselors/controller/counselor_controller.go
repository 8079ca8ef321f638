package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"konselingku_backend/internals/features/school/counselors/dto"
	"konselingku_backend/internals/features/school/counselors/model"
	helper "konselingku_backend/internals/helpers"
)

type CounselorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCounselorController(db *gorm.DB) *CounselorController {
	return &CounselorController{DB: db, Validate: validator.New()}
}

// GET /counselors?search=&active=&page=&per_page=
func (ctrl *CounselorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CounselorModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(counselor_name) LIKE ? OR LOWER(counselor_nip) LIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("counselor_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konselor")
	}

	var counselors []model.CounselorModel
	if err := q.Order("counselor_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&counselors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar konselor")
	}

	return helper.JsonList(c, "ok", dto.FromCounselorModels(counselors),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /counselors/:id
func (ctrl *CounselorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var counselor model.CounselorModel
	if err := ctrl.DB.First(&counselor, "counselor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konselor tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "ok", dto.FromCounselorModel(counselor))
}

// POST /counselors
func (ctrl *CounselorController) Create(c *fiber.Ctx) error {
	var req dto.CreateCounselorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat konselor")
	}

	return helper.JsonCreated(c, "Konselor berhasil dibuat", dto.FromCounselorModel(m))
}

// PATCH /counselors/:id
func (ctrl *CounselorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateCounselorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"counselor_id": id})
	}

	var updated model.CounselorModel
	tx := ctrl.DB.Model(&model.CounselorModel{}).
		Where("counselor_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah konselor")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konselor tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Konselor berhasil diubah", dto.FromCounselorModel(updated))
}

// DELETE /counselors/:id (soft delete)
func (ctrl *CounselorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Delete(&model.CounselorModel{}, "counselor_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus konselor")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konselor tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Konselor berhasil dihapus", fiber.Map{"counselor_id": id})
}
