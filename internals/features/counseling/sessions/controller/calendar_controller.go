package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/calendar"
	"konselingku_backend/internals/features/counseling/sessions/model"
	helper "konselingku_backend/internals/helpers"
	"konselingku_backend/internals/helpers/auth"
)

// GET /sessions/calendar?view=day|week|month&anchor=YYYY-MM-DD&direction=prev|next|today
// Mengembalikan data kalender yang sudah dihitung server (posisi blok
// harian, kolom mingguan, grid bulanan) supaya semua klien konsisten.
func (ctrl *SessionController) Calendar(c *fiber.Ctx) error {
	view := c.Query("view", "day")
	if view != "day" && view != "week" && view != "month" {
		return helper.JsonError(c, fiber.StatusBadRequest, "view harus day, week, atau month")
	}

	now := time.Now()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if ds := c.Query("anchor"); ds != "" {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "anchor harus berformat YYYY-MM-DD")
		}
		anchor = d
	}
	if dir := c.Query("direction"); dir != "" {
		anchor = calendar.Navigate(view, anchor, now, dir)
	}

	// Rentang query mengikuti tampilan yang diminta.
	var rangeStart, rangeEnd time.Time
	switch view {
	case "day":
		rangeStart = anchor
		rangeEnd = anchor.AddDate(0, 0, 1)
	case "week":
		rangeStart = calendar.StartOfWeek(anchor)
		rangeEnd = rangeStart.AddDate(0, 0, 7)
	case "month":
		firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		rangeStart = calendar.StartOfWeek(firstOfMonth)
		rangeEnd = calendar.StartOfWeek(firstOfMonth.AddDate(0, 1, -1)).AddDate(0, 0, 7)
	}

	var studentID, counselorID uuid.UUID
	if role, _ := auth.GetRoleFromToken(c); role == constants.RoleStudent {
		id, err := auth.GetStudentIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun siswa belum tertaut ke data siswa")
		}
		studentID = id
	} else if cid := c.Query("counselor_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "counselor_id tidak valid")
		}
		counselorID = id
	}

	q := ctrl.DB.Model(&model.SessionModel{}).
		Preload("Student").Preload("Counselor").
		Where("session_date >= ? AND session_date < ?", rangeStart, rangeEnd).
		Where("session_approval_status <> ?", constants.ApprovalRejected)
	if studentID != uuid.Nil {
		q = q.Where("session_student_id = ?", studentID)
	}
	if counselorID != uuid.Nil {
		q = q.Where("session_counselor_id = ?", counselorID)
	}

	var sessions []model.SessionModel
	if err := q.Order("session_date ASC").Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kalender")
	}

	payload := fiber.Map{
		"view":   view,
		"anchor": anchor.Format("2006-01-02"),
	}
	switch view {
	case "day":
		payload["blocks"] = calendar.BuildDayView(sessions, anchor)
		payload["window"] = fiber.Map{
			"start_hour": constants.CalendarStartHour,
			"end_hour":   constants.CalendarEndHour,
		}
	case "week":
		payload["days"] = calendar.BuildWeekView(sessions, anchor)
	case "month":
		payload["grid"] = calendar.BuildMonthGrid(sessions, anchor)
	}

	return helper.JsonOK(c, "ok", payload)
}
