package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/model"
)

// Overlaps memakai interval setengah terbuka [start, end):
// sesi yang berakhir tepat saat sesi lain mulai TIDAK bentrok.
func Overlaps(candStart, candEnd, exStart, exEnd time.Time) bool {
	return candStart.Before(exEnd) && candEnd.After(exStart)
}

// FindConflict mencari sesi pertama yang bentrok dengan kandidat.
// Sesi yang ditolak tidak memblokir jadwal; excludeID mengecualikan
// sesi yang sedang diubah.
func FindConflict(existing []model.SessionModel, candStart, candEnd time.Time, excludeID uuid.UUID) *model.SessionModel {
	for i := range existing {
		ex := existing[i]
		if ex.SessionID == excludeID {
			continue
		}
		if ex.SessionApprovalStatus == constants.ApprovalRejected {
			continue
		}
		if Overlaps(candStart, candEnd, ex.SessionDate, ex.End()) {
			return &existing[i]
		}
	}
	return nil
}

// ConflictMessage menyusun pesan bentrok dengan jam mulai sesi yang
// sudah ada, format 12 jam ("10:00 AM").
func ConflictMessage(ex model.SessionModel) string {
	who := "konselor"
	if ex.Counselor != nil {
		who = ex.Counselor.CounselorName
	}
	return fmt.Sprintf("Jadwal bentrok dengan sesi pukul %s bersama %s",
		ex.SessionDate.Format("3:04 PM"), who)
}

// CheckConflicts memvalidasi bentrok di sisi server sebelum simpan.
// Siswa maupun konselor tidak boleh punya dua sesi yang tumpang tindih
// pada hari yang sama. Dipanggil di dalam transaksi penyimpanan supaya
// validasi dan insert tidak terpisah.
func CheckConflicts(tx *gorm.DB, studentID, counselorID uuid.UUID, start time.Time, durationMinutes int, excludeID uuid.UUID) error {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	dayStart := dayOf(start)
	dayEnd := dayStart.Add(24 * time.Hour)

	var sameDay []model.SessionModel
	err := tx.Preload("Counselor").
		Where("session_date >= ? AND session_date < ?", dayStart, dayEnd).
		Where("session_student_id = ? OR session_counselor_id = ?", studentID, counselorID).
		Find(&sameDay).Error
	if err != nil {
		// Gagal membaca jadwal berarti kita tidak tahu ada bentrok atau
		// tidak; tolak penyimpanan, jangan loloskan.
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa bentrok jadwal")
	}

	if hit := FindConflict(sameDay, start, end, excludeID); hit != nil {
		return fiber.NewError(fiber.StatusConflict, ConflictMessage(*hit))
	}
	return nil
}
