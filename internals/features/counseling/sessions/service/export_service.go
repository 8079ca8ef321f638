package service

import (
	"strconv"

	"konselingku_backend/internals/features/counseling/sessions/model"
)

// CSVHeader adalah baris judul ekspor riwayat sesi.
var CSVHeader = []string{
	"Tanggal", "Jenis", "Durasi (menit)", "Catatan", "Hasil", "Tindak Lanjut", "Konselor",
}

// BuildCSVRow memetakan satu sesi menjadi satu baris CSV. Quoting
// diserahkan ke encoding/csv, jadi nilai dikembalikan apa adanya.
func BuildCSVRow(s model.SessionModel) []string {
	outcome := ""
	if s.SessionOutcome != nil {
		outcome = *s.SessionOutcome
	}
	nextSteps := ""
	if s.SessionNextSteps != nil {
		nextSteps = *s.SessionNextSteps
	}
	counselor := ""
	if s.Counselor != nil {
		counselor = s.Counselor.CounselorName
	}

	return []string{
		s.SessionDate.Format("2006-01-02 15:04"),
		s.SessionType,
		strconv.Itoa(s.SessionDuration),
		s.SessionNotes,
		outcome,
		nextSteps,
		counselor,
	}
}

// CountByType menghitung jumlah sesi per jenis, untuk ringkasan laporan.
func CountByType(sessions []model.SessionModel) map[string]int {
	counts := map[string]int{}
	for _, s := range sessions {
		counts[s.SessionType]++
	}
	return counts
}
