package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/model"
	counselorModel "konselingku_backend/internals/features/school/counselors/model"
)

func TestBuildCSVRow(t *testing.T) {
	outcome := constants.OutcomePositive
	nextSteps := "Lanjut sesi minggu depan"

	sess := model.SessionModel{
		SessionDate:      mustTime(t, "2026-08-25 10:00"),
		SessionDuration:  45,
		SessionType:      constants.SessionTypeAcademic,
		SessionNotes:     `Siswa bilang "sudah membaik", fokus ke ujian`,
		SessionOutcome:   &outcome,
		SessionNextSteps: &nextSteps,
		Counselor:        &counselorModel.CounselorModel{CounselorName: "Pak Budi"},
	}

	row := BuildCSVRow(sess)
	want := []string{
		"2026-08-25 10:00", "academic", "45",
		`Siswa bilang "sudah membaik", fokus ke ujian`,
		"positive", "Lanjut sesi minggu depan", "Pak Budi",
	}
	if len(row) != len(want) {
		t.Fatalf("BuildCSVRow() len = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("kolom %d = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestBuildCSVRowKolomKosong(t *testing.T) {
	sess := model.SessionModel{
		SessionDate:     mustTime(t, "2026-08-25 10:00"),
		SessionDuration: 30,
		SessionType:     constants.SessionTypeCareer,
	}

	row := BuildCSVRow(sess)
	for _, i := range []int{4, 5, 6} { // hasil, tindak lanjut, konselor
		if row[i] != "" {
			t.Errorf("kolom %d = %q, want kosong", i, row[i])
		}
	}
}

// Catatan dengan koma dan kutip harus selamat lewat encoding/csv.
func TestCSVQuotingRoundTrip(t *testing.T) {
	sess := model.SessionModel{
		SessionDate:     mustTime(t, "2026-08-25 10:00"),
		SessionDuration: 30,
		SessionType:     constants.SessionTypeSocial,
		SessionNotes:    "catatan, dengan koma dan \"kutip\"\ndan baris baru",
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(BuildCSVRow(sess)); err != nil {
		t.Fatal(err)
	}
	w.Flush()

	r := csv.NewReader(strings.NewReader(buf.String()))
	rec, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec[3] != sess.SessionNotes {
		t.Errorf("catatan setelah round-trip = %q, want %q", rec[3], sess.SessionNotes)
	}
}

func TestCountByType(t *testing.T) {
	sessions := []model.SessionModel{
		{SessionType: constants.SessionTypeAcademic},
		{SessionType: constants.SessionTypeAcademic},
		{SessionType: constants.SessionTypeMentalHealth},
		{SessionType: constants.SessionTypeCareer},
	}

	counts := CountByType(sessions)
	if counts[constants.SessionTypeAcademic] != 2 {
		t.Errorf("academic = %d, want 2", counts[constants.SessionTypeAcademic])
	}
	if counts[constants.SessionTypeMentalHealth] != 1 {
		t.Errorf("mental-health = %d, want 1", counts[constants.SessionTypeMentalHealth])
	}
	if counts[constants.SessionTypeSocial] != 0 {
		t.Errorf("social = %d, want 0", counts[constants.SessionTypeSocial])
	}
}
