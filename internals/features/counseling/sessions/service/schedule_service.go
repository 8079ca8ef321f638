package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"konselingku_backend/internals/constants"
)

// ValidateSchedule memeriksa aturan jadwal sebelum sesi disimpan:
// durasi positif, bukan hari Minggu, jam mulai di jendela booking,
// dan tidak di masa lalu (untuk hari ini: harus setelah sekarang).
func ValidateSchedule(start time.Time, durationMinutes int, now time.Time) error {
	if durationMinutes <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Durasi sesi harus lebih dari 0 menit")
	}

	if start.Weekday() == constants.ClosedWeekday {
		return fiber.NewError(fiber.StatusBadRequest, "Hari Minggu libur, tidak bisa menjadwalkan sesi")
	}

	startMinute := start.Hour()*60 + start.Minute()
	if startMinute < constants.BookingStartHour*60 || startMinute > constants.BookingEndHour*60 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Jam mulai sesi harus antara %02d:00 dan %02d:00",
				constants.BookingStartHour, constants.BookingEndHour))
	}

	today := dayOf(now)
	startDay := dayOf(start)
	if startDay.Before(today) {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal sesi tidak boleh di masa lalu")
	}
	if startDay.Equal(today) && !start.After(now) {
		return fiber.NewError(fiber.StatusBadRequest, "Jam sesi untuk hari ini harus setelah waktu sekarang")
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	if end.After(endOfCalendar(start)) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Sesi harus selesai paling lambat %02d:00", constants.CalendarEndHour))
	}

	return nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfCalendar(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		constants.CalendarEndHour, 0, 0, 0, day.Location())
}
