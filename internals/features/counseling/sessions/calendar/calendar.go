package calendar

import (
	"sort"
	"time"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/dto"
	"konselingku_backend/internals/features/counseling/sessions/model"
)

const (
	dayKeyLayout = "2006-01-02"

	// Tinggi minimum blok sesi di tampilan harian, setara 15 menit,
	// supaya sesi singkat tetap bisa diklik.
	minBlockMinutes = 15
)

// Jendela tampilan harian: 07:00 - 17:00.
func calendarMinutes() float64 {
	return float64((constants.CalendarEndHour - constants.CalendarStartHour) * 60)
}

/* ===================== DAY VIEW ===================== */

// DayBlock adalah satu sesi yang sudah dihitung posisinya pada kolom
// harian. Top dan Height dalam persen terhadap tinggi kolom.
type DayBlock struct {
	Session       dto.SessionResponse `json:"session"`
	TopPercent    float64             `json:"top_percent"`
	HeightPercent float64             `json:"height_percent"`
	Clamped       bool                `json:"clamped"`
}

// BuildDayView menghitung posisi blok untuk semua sesi pada tanggal
// tertentu. Sesi di luar jendela 07:00-17:00 dipotong ke tepi jendela
// dan ditandai Clamped.
func BuildDayView(sessions []model.SessionModel, day time.Time) []DayBlock {
	open := float64(constants.CalendarStartHour * 60)
	total := calendarMinutes()

	blocks := make([]DayBlock, 0, len(sessions))
	for _, s := range sessions {
		if s.SessionDate.Format(dayKeyLayout) != day.Format(dayKeyLayout) {
			continue
		}

		startMin := float64(s.SessionDate.Hour()*60+s.SessionDate.Minute()) - open
		durMin := float64(s.SessionDuration)
		if durMin < minBlockMinutes {
			durMin = minBlockMinutes
		}
		endMin := startMin + durMin

		clamped := false
		if startMin < 0 {
			startMin = 0
			clamped = true
		}
		if endMin > total {
			endMin = total
			clamped = true
		}
		if endMin <= startMin {
			// Sesi sepenuhnya di luar jendela.
			continue
		}

		blocks = append(blocks, DayBlock{
			Session:       dto.FromSessionModel(s),
			TopPercent:    startMin / total * 100,
			HeightPercent: (endMin - startMin) / total * 100,
			Clamped:       clamped,
		})
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Session.SessionDate.Before(blocks[j].Session.SessionDate)
	})
	return blocks
}

/* ===================== WEEK VIEW ===================== */

// WeekDay adalah satu kolom hari pada tampilan mingguan.
type WeekDay struct {
	Date     string                `json:"date"` // yyyy-MM-dd
	Weekday  string                `json:"weekday"`
	Sessions []dto.SessionResponse `json:"sessions"`
}

// StartOfWeek mengembalikan hari Senin dari pekan yang memuat t.
func StartOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7 // Senin = 0
	return d.AddDate(0, 0, -offset)
}

// BuildWeekView mengelompokkan sesi per hari untuk pekan yang memuat
// anchor. Ketujuh hari selalu ada meskipun kosong.
func BuildWeekView(sessions []model.SessionModel, anchor time.Time) []WeekDay {
	start := StartOfWeek(anchor)

	byDay := map[string][]dto.SessionResponse{}
	for _, s := range sessions {
		key := s.SessionDate.Format(dayKeyLayout)
		byDay[key] = append(byDay[key], dto.FromSessionModel(s))
	}

	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(dayKeyLayout)
		list := byDay[key]
		sort.Slice(list, func(a, b int) bool {
			return list[a].SessionDate.Before(list[b].SessionDate)
		})
		if list == nil {
			list = []dto.SessionResponse{}
		}
		days = append(days, WeekDay{
			Date:     key,
			Weekday:  d.Weekday().String(),
			Sessions: list,
		})
	}
	return days
}

/* ===================== MONTH VIEW ===================== */

// MonthCell adalah satu sel pada grid bulan.
type MonthCell struct {
	Date         string `json:"date"`
	InMonth      bool   `json:"in_month"`
	SessionCount int    `json:"session_count"`
}

// BuildMonthGrid menyusun grid bulan sebagai pekan-pekan utuh (baris
// berisi 7 sel), termasuk ekor bulan sebelumnya dan kepala bulan
// berikutnya.
func BuildMonthGrid(sessions []model.SessionModel, anchor time.Time) [][]MonthCell {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := StartOfWeek(firstOfMonth)
	gridEnd := StartOfWeek(lastOfMonth).AddDate(0, 0, 7)

	counts := map[string]int{}
	for _, s := range sessions {
		counts[s.SessionDate.Format(dayKeyLayout)]++
	}

	var grid [][]MonthCell
	for cur := gridStart; cur.Before(gridEnd); cur = cur.AddDate(0, 0, 7) {
		row := make([]MonthCell, 0, 7)
		for i := 0; i < 7; i++ {
			d := cur.AddDate(0, 0, i)
			key := d.Format(dayKeyLayout)
			row = append(row, MonthCell{
				Date:         key,
				InMonth:      d.Month() == anchor.Month(),
				SessionCount: counts[key],
			})
		}
		grid = append(grid, row)
	}
	return grid
}

/* ===================== NAVIGATION ===================== */

// Navigate menggeser anchor sesuai tampilan dan arah.
// direction: "prev", "next", atau "today".
func Navigate(view string, anchor, now time.Time, direction string) time.Time {
	switch direction {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "prev":
		return shift(view, anchor, -1)
	case "next":
		return shift(view, anchor, 1)
	default:
		return anchor
	}
}

func shift(view string, anchor time.Time, sign int) time.Time {
	switch view {
	case "week":
		return anchor.AddDate(0, 0, 7*sign)
	case "month":
		return anchor.AddDate(0, sign, 0)
	default: // day
		return anchor.AddDate(0, 0, sign)
	}
}
