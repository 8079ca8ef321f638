package calendar

import (
	"math"
	"testing"
	"time"

	"konselingku_backend/internals/features/counseling/sessions/model"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestBuildDayView(t *testing.T) {
	day := mustTime(t, "2026-08-25 00:00")

	t.Run("posisi blok normal", func(t *testing.T) {
		sessions := []model.SessionModel{
			{SessionDate: mustTime(t, "2026-08-25 10:00"), SessionDuration: 60},
		}
		blocks := BuildDayView(sessions, day)
		if len(blocks) != 1 {
			t.Fatalf("len = %d, want 1", len(blocks))
		}
		// 10:00 = 180 menit setelah 07:00, jendela 600 menit → 30%.
		if !almostEqual(blocks[0].TopPercent, 30) {
			t.Errorf("TopPercent = %v, want 30", blocks[0].TopPercent)
		}
		if !almostEqual(blocks[0].HeightPercent, 10) {
			t.Errorf("HeightPercent = %v, want 10", blocks[0].HeightPercent)
		}
		if blocks[0].Clamped {
			t.Error("Clamped = true, want false")
		}
	})

	t.Run("tepi jendela", func(t *testing.T) {
		sessions := []model.SessionModel{
			{SessionDate: mustTime(t, "2026-08-25 07:00"), SessionDuration: 60},
			{SessionDate: mustTime(t, "2026-08-25 16:00"), SessionDuration: 60},
		}
		blocks := BuildDayView(sessions, day)
		if len(blocks) != 2 {
			t.Fatalf("len = %d, want 2", len(blocks))
		}
		// Mulai tepat jam buka → menempel tepi atas.
		if !almostEqual(blocks[0].TopPercent, 0) {
			t.Errorf("TopPercent jam 07:00 = %v, want 0", blocks[0].TopPercent)
		}
		// Selesai tepat jam tutup → menempel tepi bawah, tanpa pemotongan.
		if sum := blocks[1].TopPercent + blocks[1].HeightPercent; !almostEqual(sum, 100) {
			t.Errorf("top+height sesi 16:00+60m = %v, want 100", sum)
		}
		if blocks[0].Clamped || blocks[1].Clamped {
			t.Error("sesi pas di tepi jendela tidak boleh Clamped")
		}
	})

	t.Run("sesi singkat dapat tinggi minimum", func(t *testing.T) {
		sessions := []model.SessionModel{
			{SessionDate: mustTime(t, "2026-08-25 09:00"), SessionDuration: 5},
		}
		blocks := BuildDayView(sessions, day)
		if len(blocks) != 1 {
			t.Fatalf("len = %d, want 1", len(blocks))
		}
		// Minimum 15 menit dari 600 → 2.5%.
		if !almostEqual(blocks[0].HeightPercent, 2.5) {
			t.Errorf("HeightPercent = %v, want 2.5", blocks[0].HeightPercent)
		}
	})

	t.Run("sesi melewati jam tutup dipotong", func(t *testing.T) {
		sessions := []model.SessionModel{
			{SessionDate: mustTime(t, "2026-08-25 16:30"), SessionDuration: 60},
		}
		blocks := BuildDayView(sessions, day)
		if len(blocks) != 1 {
			t.Fatalf("len = %d, want 1", len(blocks))
		}
		if !blocks[0].Clamped {
			t.Error("Clamped = false, want true")
		}
		if top, h := blocks[0].TopPercent, blocks[0].HeightPercent; top+h > 100.01 {
			t.Errorf("top+height = %v, harus <= 100", top+h)
		}
	})

	t.Run("hari lain tidak ikut", func(t *testing.T) {
		sessions := []model.SessionModel{
			{SessionDate: mustTime(t, "2026-08-26 10:00"), SessionDuration: 60},
		}
		if blocks := BuildDayView(sessions, day); len(blocks) != 0 {
			t.Errorf("len = %d, want 0", len(blocks))
		}
	})

	t.Run("urut berdasarkan jam mulai", func(t *testing.T) {
		sessions := []model.SessionModel{
			{SessionDate: mustTime(t, "2026-08-25 13:00"), SessionDuration: 30},
			{SessionDate: mustTime(t, "2026-08-25 08:00"), SessionDuration: 30},
		}
		blocks := BuildDayView(sessions, day)
		if len(blocks) != 2 {
			t.Fatalf("len = %d, want 2", len(blocks))
		}
		if !blocks[0].Session.SessionDate.Before(blocks[1].Session.SessionDate) {
			t.Error("blok tidak terurut naik")
		}
	})
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"senin tetap senin", "2026-08-24 10:00", "2026-08-24"},
		{"rabu mundur ke senin", "2026-08-26 10:00", "2026-08-24"},
		{"minggu mundur ke senin sebelumnya", "2026-08-30 10:00", "2026-08-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(mustTime(t, tt.in)).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildWeekView(t *testing.T) {
	anchor := mustTime(t, "2026-08-26 00:00") // Rabu
	sessions := []model.SessionModel{
		{SessionDate: mustTime(t, "2026-08-25 10:00"), SessionDuration: 60},
		{SessionDate: mustTime(t, "2026-08-25 08:00"), SessionDuration: 30},
		{SessionDate: mustTime(t, "2026-08-28 09:00"), SessionDuration: 45},
	}

	days := BuildWeekView(sessions, anchor)
	if len(days) != 7 {
		t.Fatalf("len = %d, want 7 hari", len(days))
	}
	if days[0].Date != "2026-08-24" {
		t.Errorf("hari pertama = %s, want Senin 2026-08-24", days[0].Date)
	}
	if days[6].Date != "2026-08-30" {
		t.Errorf("hari terakhir = %s, want Minggu 2026-08-30", days[6].Date)
	}

	// Selasa punya 2 sesi, terurut.
	selasa := days[1]
	if len(selasa.Sessions) != 2 {
		t.Fatalf("sesi Selasa = %d, want 2", len(selasa.Sessions))
	}
	if !selasa.Sessions[0].SessionDate.Before(selasa.Sessions[1].SessionDate) {
		t.Error("sesi Selasa tidak terurut")
	}

	// Hari kosong tetap ada, bukan nil.
	if days[3].Sessions == nil {
		t.Error("hari kosong harus slice kosong, bukan nil")
	}
}

func TestBuildMonthGrid(t *testing.T) {
	anchor := mustTime(t, "2026-08-15 00:00")
	sessions := []model.SessionModel{
		{SessionDate: mustTime(t, "2026-08-25 10:00"), SessionDuration: 60},
		{SessionDate: mustTime(t, "2026-08-25 13:00"), SessionDuration: 30},
	}

	grid := BuildMonthGrid(sessions, anchor)
	if len(grid) == 0 {
		t.Fatal("grid kosong")
	}
	for i, row := range grid {
		if len(row) != 7 {
			t.Errorf("baris %d punya %d sel, want 7", i, len(row))
		}
	}

	// 1 Agustus 2026 jatuh hari Sabtu → baris pertama mulai Senin 27 Juli.
	if grid[0][0].Date != "2026-07-27" {
		t.Errorf("sel pertama = %s, want 2026-07-27", grid[0][0].Date)
	}
	if grid[0][0].InMonth {
		t.Error("27 Juli harus InMonth=false")
	}

	found := false
	for _, row := range grid {
		for _, cell := range row {
			if cell.Date == "2026-08-25" {
				found = true
				if cell.SessionCount != 2 {
					t.Errorf("SessionCount 25 Agustus = %d, want 2", cell.SessionCount)
				}
				if !cell.InMonth {
					t.Error("25 Agustus harus InMonth=true")
				}
			}
		}
	}
	if !found {
		t.Error("sel 2026-08-25 tidak ada di grid")
	}

	// Baris terakhir harus memuat 31 Agustus.
	last := grid[len(grid)-1]
	if last[0].Date != "2026-08-31" {
		t.Errorf("baris terakhir mulai %s, want 2026-08-31", last[0].Date)
	}
}

func TestNavigate(t *testing.T) {
	anchor := mustTime(t, "2026-08-25 00:00")
	now := mustTime(t, "2026-08-27 09:41")

	tests := []struct {
		name      string
		view      string
		direction string
		want      string
	}{
		{"hari sebelumnya", "day", "prev", "2026-08-24"},
		{"hari berikutnya", "day", "next", "2026-08-26"},
		{"pekan sebelumnya", "week", "prev", "2026-08-18"},
		{"pekan berikutnya", "week", "next", "2026-09-01"},
		{"bulan sebelumnya", "month", "prev", "2026-07-25"},
		{"bulan berikutnya", "month", "next", "2026-09-25"},
		{"kembali ke hari ini", "day", "today", "2026-08-27"},
		{"arah tak dikenal tidak menggeser", "day", "sideways", "2026-08-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(tt.view, anchor, now, tt.direction).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("Navigate(%s, %s) = %s, want %s", tt.view, tt.direction, got, tt.want)
			}
		})
	}
}
