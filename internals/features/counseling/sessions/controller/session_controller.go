package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/dto"
	"konselingku_backend/internals/features/counseling/sessions/model"
	"konselingku_backend/internals/features/counseling/sessions/service"
	helper "konselingku_backend/internals/helpers"
	"konselingku_backend/internals/helpers/auth"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /sessions?student_id=&counselor_id=&type=&approval_status=&date_from=&date_to=
// Siswa hanya melihat sesi miliknya sendiri; konselor default ke sesi
// yang ia tangani kecuali memfilter eksplisit.
func (ctrl *SessionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SessionModel{}).
		Preload("Student").Preload("Counselor")

	role, _ := auth.GetRoleFromToken(c)
	switch role {
	case constants.RoleStudent:
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun siswa belum tertaut ke data siswa")
		}
		q = q.Where("session_student_id = ?", studentID)
	case constants.RoleCounselor:
		if sid := c.Query("student_id"); sid != "" {
			id, err := uuid.Parse(sid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
			}
			q = q.Where("session_student_id = ?", id)
		}
		if cid := c.Query("counselor_id"); cid != "" {
			id, err := uuid.Parse(cid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "counselor_id tidak valid")
			}
			q = q.Where("session_counselor_id = ?", id)
		} else if ownID, err := auth.GetCounselorIDFromToken(c); err == nil {
			q = q.Where("session_counselor_id = ?", ownID)
		}
	default:
		if sid := c.Query("student_id"); sid != "" {
			id, err := uuid.Parse(sid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
			}
			q = q.Where("session_student_id = ?", id)
		}
		if cid := c.Query("counselor_id"); cid != "" {
			id, err := uuid.Parse(cid)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "counselor_id tidak valid")
			}
			q = q.Where("session_counselor_id = ?", id)
		}
	}

	if t := c.Query("type"); t != "" {
		q = q.Where("session_type = ?", t)
	}
	if status := c.Query("approval_status"); status != "" {
		q = q.Where("session_approval_status = ?", status)
	}
	if from := c.Query("date_from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus berformat YYYY-MM-DD")
		}
		q = q.Where("session_date >= ?", d)
	}
	if to := c.Query("date_to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus berformat YYYY-MM-DD")
		}
		q = q.Where("session_date < ?", d.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}

	var sessions []model.SessionModel
	if err := q.Order("session_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}

	return helper.JsonList(c, "ok", dto.FromSessionModels(sessions),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== DETAIL ===================== */
// GET /sessions/:id
func (ctrl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var sess model.SessionModel
	if err := ctrl.DB.Preload("Student").Preload("Counselor").
		First(&sess, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil || sess.SessionStudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Sesi ini bukan milik Anda")
		}
	}

	return helper.JsonOK(c, "ok", dto.FromSessionModel(sess))
}

/* ===================== CREATE ===================== */
// POST /sessions
// Validasi jadwal dan bentrok dilakukan di server, di dalam transaksi
// yang sama dengan insert.
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
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

	// Siswa hanya boleh membuat sesi untuk dirinya sendiri; konselor
	// hanya atas namanya sendiri.
	switch role, _ := auth.GetRoleFromToken(c); role {
	case constants.RoleStudent:
		studentID, err := auth.GetStudentIDFromToken(c)
		if err != nil || req.SessionStudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Siswa hanya bisa menjadwalkan sesi untuk dirinya sendiri")
		}
	case constants.RoleCounselor:
		counselorID, err := auth.GetCounselorIDFromToken(c)
		if err != nil || req.SessionCounselorID != counselorID {
			return helper.JsonError(c, fiber.StatusForbidden, "Konselor hanya bisa menjadwalkan sesi atas namanya sendiri")
		}
	}

	if err := service.ValidateSchedule(req.SessionDate, req.SessionDuration, time.Now()); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel(userID)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.CheckConflicts(tx,
			req.SessionStudentID, req.SessionCounselorID,
			req.SessionDate, req.SessionDuration, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ctrl.DB.Preload("Student").Preload("Counselor").First(&m, "session_id = ?", m.SessionID)
	return helper.JsonCreated(c, "Sesi konseling berhasil dijadwalkan", dto.FromSessionModel(m))
}

/* ===================== UPDATE ===================== */
// PATCH /sessions/:id
func (ctrl *SessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sess model.SessionModel
	if err := ctrl.DB.First(&sess, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	role, _ := auth.GetRoleFromToken(c)

	// Outcome dan next steps hanya boleh diisi konselor.
	if (req.SessionOutcome != nil || req.SessionNextSteps != nil) &&
		!constants.CanEditField(role, constants.FieldOutcome) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya konselor yang bisa mengisi hasil sesi")
	}
	if role == constants.RoleStudent {
		studentID, serr := auth.GetStudentIDFromToken(c)
		if serr != nil || sess.SessionStudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Sesi ini bukan milik Anda")
		}
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", fiber.Map{"session_id": id})
	}

	newDate := sess.SessionDate
	newDuration := sess.SessionDuration
	rescheduled := false
	if req.SessionDate != nil {
		newDate = *req.SessionDate
		rescheduled = true
	}
	if req.SessionDuration != nil {
		newDuration = *req.SessionDuration
		rescheduled = true
	}

	if rescheduled {
		if err := service.ValidateSchedule(newDate, newDuration, time.Now()); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if rescheduled {
			if err := service.CheckConflicts(tx,
				sess.SessionStudentID, sess.SessionCounselorID,
				newDate, newDuration, sess.SessionID); err != nil {
				return err
			}
		}
		return tx.Model(&model.SessionModel{}).
			Where("session_id = ?", id).
			Updates(updates).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var updated model.SessionModel
	ctrl.DB.Preload("Student").Preload("Counselor").First(&updated, "session_id = ?", id)
	return helper.JsonUpdated(c, "Sesi berhasil diubah", dto.FromSessionModel(updated))
}

/* ===================== DELETE (hard) ===================== */
// DELETE /sessions/:id
func (ctrl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Delete(&model.SessionModel{}, "session_id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Sesi berhasil dihapus", fiber.Map{"session_id": id})
}

/* ===================== APPROVE / REJECT ===================== */
// POST /sessions/:id/approve
func (ctrl *SessionController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var result *model.SessionModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		sess, aerr := service.ApproveSession(tx, id, userID)
		if aerr != nil {
			return aerr
		}
		result = sess
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ctrl.DB.Preload("Student").Preload("Counselor").First(result, "session_id = ?", id)
	return helper.JsonUpdated(c, "Sesi disetujui", dto.FromSessionModel(*result))
}

// POST /sessions/:id/reject
func (ctrl *SessionController) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID, err := auth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var req dto.RejectSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var result *model.SessionModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		sess, rerr := service.RejectSession(tx, id, userID, req.Reason)
		if rerr != nil {
			return rerr
		}
		result = sess
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ctrl.DB.Preload("Student").Preload("Counselor").First(result, "session_id = ?", id)
	return helper.JsonUpdated(c, "Sesi ditolak", dto.FromSessionModel(*result))
}
