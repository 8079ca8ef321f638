package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/helpers/auth"
)

// Cabang validasi parameter berhenti sebelum menyentuh DB, jadi cukup
// controller kosong tanpa koneksi.
func newCalendarTestApp(role string) *fiber.App {
	ctrl := &SessionController{}
	app := fiber.New()
	app.Get("/sessions/calendar", func(c *fiber.Ctx) error {
		c.Locals(auth.LocUserID, uuid.New())
		c.Locals(auth.LocRole, role)
		return ctrl.Calendar(c)
	})
	return app
}

func getCalendar(t *testing.T, app *fiber.App, query string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/sessions/calendar?"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestCalendarParameterTidakValid(t *testing.T) {
	app := newCalendarTestApp(constants.RoleStaff)

	tests := []struct {
		name  string
		query string
	}{
		{"view asing", "view=year"},
		{"anchor bukan tanggal", "view=day&anchor=kemarin"},
		{"counselor_id bukan uuid", "view=day&anchor=2026-08-25&counselor_id=bukan-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := getCalendar(t, app, tt.query)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
