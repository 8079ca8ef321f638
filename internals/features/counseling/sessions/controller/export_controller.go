package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/model"
	"konselingku_backend/internals/features/counseling/sessions/service"
	studentModel "konselingku_backend/internals/features/school/students/model"
	helper "konselingku_backend/internals/helpers"
)

func (ctrl *SessionController) loadStudentSessions(studentID uuid.UUID) (studentModel.StudentModel, []model.SessionModel, error) {
	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return student, nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return student, nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var sessions []model.SessionModel
	if err := ctrl.DB.Preload("Counselor").
		Where("session_student_id = ?", studentID).
		Order("session_date ASC").
		Find(&sessions).Error; err != nil {
		return student, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat sesi")
	}
	return student, sessions, nil
}

/* ===================== CSV ===================== */
// GET /sessions/export/csv?student_id=
// CSV ditulis streaming langsung ke body response.
func (ctrl *SessionController) ExportCSV(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib dan harus UUID")
	}

	student, sessions, err := ctrl.loadStudentSessions(studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	filename := fmt.Sprintf("riwayat-konseling-%s-%s.csv",
		student.StudentNIS, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Response().BodyWriter())
	if err := w.Write(service.CSVHeader); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis CSV")
	}
	for _, s := range sessions {
		if err := w.Write(service.BuildCSVRow(s)); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis CSV")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis CSV")
	}
	return nil
}

/* ===================== PDF ===================== */
// GET /sessions/export/pdf?student_id=
// Laporan berisi identitas siswa, ringkasan jumlah per jenis, dan tabel
// riwayat sesi.
func (ctrl *SessionController) ExportPDF(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib dan harus UUID")
	}

	student, sessions, err := ctrl.loadStudentSessions(studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan Konseling", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Laporan Riwayat Konseling")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Nama: %s", student.StudentName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("NIS: %s", student.StudentNIS))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Kelas: %s %s", student.StudentTingkat, student.StudentKelas))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Dicetak: %s", time.Now().Format("2 January 2006 15:04")))
	pdf.Ln(10)

	// Ringkasan per jenis sesi.
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Ringkasan")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	counts := service.CountByType(sessions)
	for _, t := range constants.SessionTypes {
		if counts[t] == 0 {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d sesi", t, counts[t]))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d sesi", len(sessions)))
	pdf.Ln(10)

	// Tabel riwayat.
	pdf.SetFont("Arial", "B", 10)
	widths := []float64{30, 28, 18, 60, 20, 34}
	headers := []string{"Tanggal", "Jenis", "Durasi", "Catatan", "Hasil", "Konselor"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, s := range sessions {
		outcome := "-"
		if s.SessionOutcome != nil {
			outcome = *s.SessionOutcome
		}
		counselor := "-"
		if s.Counselor != nil {
			counselor = s.Counselor.CounselorName
		}
		notes := s.SessionNotes
		if len(notes) > 48 {
			notes = notes[:45] + "..."
		}

		row := []string{
			s.SessionDate.Format("02-01-2006 15:04"),
			s.SessionType,
			fmt.Sprintf("%d mnt", s.SessionDuration),
			notes,
			outcome,
			counselor,
		}
		for i, v := range row {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	filename := fmt.Sprintf("laporan-konseling-%s-%s.pdf",
		student.StudentNIS, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	if err := pdf.Output(c.Response().BodyWriter()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	return nil
}
