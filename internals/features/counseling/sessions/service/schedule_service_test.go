package service

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestValidateSchedule(t *testing.T) {
	// Senin pagi sebagai acuan "sekarang".
	now := mustTime(t, "2026-08-24 08:00")

	tests := []struct {
		name     string
		start    string
		duration int
		wantErr  bool
	}{
		{"jadwal normal besok", "2026-08-25 10:00", 60, false},
		{"tepat jam buka", "2026-08-25 07:00", 30, false},
		{"tepat batas akhir booking", "2026-08-25 15:00", 60, false},
		{"durasi nol", "2026-08-25 10:00", 0, true},
		{"durasi negatif", "2026-08-25 10:00", -30, true},
		{"hari minggu", "2026-08-30 10:00", 60, true},
		{"sebelum jam buka", "2026-08-25 06:30", 60, true},
		{"setelah batas booking", "2026-08-25 15:30", 60, true},
		{"tanggal kemarin", "2026-08-23 10:00", 60, true},
		{"hari ini sebelum sekarang", "2026-08-24 07:30", 30, true},
		{"hari ini setelah sekarang", "2026-08-24 09:00", 30, false},
		{"melewati jam tutup kalender", "2026-08-25 15:00", 180, true},
		{"selesai tepat jam tutup", "2026-08-25 15:00", 120, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(mustTime(t, tt.start), tt.duration, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchedule(%s, %d) error = %v, wantErr %v",
					tt.start, tt.duration, err, tt.wantErr)
			}
		})
	}
}
