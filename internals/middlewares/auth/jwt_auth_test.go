package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "rahasia-test"

func signedAccessToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":   uuid.NewString(),
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func newAuthTestApp(checker func(string) (bool, error)) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: testSecret, BlacklistChecker: checker}))
	app.Get("/p", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func requestWithToken(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestAuthJWTBlacklist(t *testing.T) {
	token := signedAccessToken(t)

	t.Run("token masuk blacklist ditolak", func(t *testing.T) {
		app := newAuthTestApp(func(string) (bool, error) { return true, nil })
		if resp := requestWithToken(t, app, token); resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("cek blacklist gagal tidak memblokir", func(t *testing.T) {
		app := newAuthTestApp(func(string) (bool, error) {
			return false, errors.New("db down")
		})
		if resp := requestWithToken(t, app, token); resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("tanpa blacklist checker tetap jalan", func(t *testing.T) {
		app := newAuthTestApp(nil)
		if resp := requestWithToken(t, app, token); resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}
