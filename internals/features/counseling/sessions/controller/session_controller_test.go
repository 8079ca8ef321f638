package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/helpers/auth"
)

// App minimal: middleware palsu mengisi Locals seperti AuthJWT,
// lalu langsung ke Create. Cabang 403 berhenti sebelum menyentuh DB.
func newCreateTestApp(role string, studentID, counselorID uuid.UUID) *fiber.App {
	ctrl := &SessionController{Validate: validator.New()}
	app := fiber.New()
	app.Post("/sessions", func(c *fiber.Ctx) error {
		c.Locals(auth.LocUserID, uuid.New())
		c.Locals(auth.LocRole, role)
		if studentID != uuid.Nil {
			c.Locals(auth.LocStudentID, studentID)
		}
		if counselorID != uuid.Nil {
			c.Locals(auth.LocCounselorID, counselorID)
		}
		return ctrl.Create(c)
	})
	return app
}

func postSession(t *testing.T, app *fiber.App, studentID, counselorID uuid.UUID, date string) *http.Response {
	t.Helper()
	body := fmt.Sprintf(`{
		"session_student_id": %q,
		"session_counselor_id": %q,
		"session_date": %q,
		"session_duration": 60,
		"session_type": "academic"
	}`, studentID, counselorID, date)
	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestCreateSiswaHanyaUntukDiriSendiri(t *testing.T) {
	own := uuid.New()
	other := uuid.New()
	app := newCreateTestApp(constants.RoleStudent, own, uuid.Nil)

	resp := postSession(t, app, other, uuid.New(), "2099-01-05T10:00:00+07:00")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("siswa menjadwalkan siswa lain: status = %d, want 403", resp.StatusCode)
	}
}

func TestCreateKonselorHanyaAtasNamaSendiri(t *testing.T) {
	own := uuid.New()
	other := uuid.New()
	app := newCreateTestApp(constants.RoleCounselor, uuid.Nil, own)

	resp := postSession(t, app, uuid.New(), other, "2099-01-05T10:00:00+07:00")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("konselor memakai counselor_id lain: status = %d, want 403", resp.StatusCode)
	}

	// counselor_id milik sendiri lolos dari penguncian: request yang sama
	// dengan tanggal hari Minggu ditolak oleh validasi jadwal (400),
	// bukan oleh penguncian (403).
	resp = postSession(t, app, uuid.New(), own, "2099-01-04T10:00:00+07:00")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("konselor memakai counselor_id sendiri: status = %d, want 400 dari validasi jadwal", resp.StatusCode)
	}
}

func TestCreateKonselorTanpaProfilTertaut(t *testing.T) {
	app := newCreateTestApp(constants.RoleCounselor, uuid.Nil, uuid.Nil)

	resp := postSession(t, app, uuid.New(), uuid.New(), "2099-01-05T10:00:00+07:00")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("konselor tanpa profil tertaut: status = %d, want 403", resp.StatusCode)
	}
}
