// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang diisi middleware AuthJWT setelah verifikasi token.
const (
	LocUserID      = "user_id"
	LocUserName    = "user_name"
	LocRole        = "role"
	LocStudentID   = "student_id"
	LocCounselorID = "counselor_id"
)

func localUUID(c *fiber.Ctx, key, emptyMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
	}
}

// GetUserIDFromToken ambil user_id dari Locals.
// 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID, "User belum login")
}

// GetRoleFromToken ambil role aktif dari Locals.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals(LocRole)
	if v == nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan pada token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan pada token")
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// GetStudentIDFromToken: untuk role student, id profil siswa yang tertaut.
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocStudentID, "Akun tidak tertaut ke profil siswa")
}

// GetCounselorIDFromToken: untuk role counselor, id profil counselor yang tertaut.
func GetCounselorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocCounselorID, "Akun tidak tertaut ke profil counselor")
}

func HasRole(c *fiber.Ctx, roles ...string) bool {
	got, err := GetRoleFromToken(c)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if strings.EqualFold(r, got) {
			return true
		}
	}
	return false
}
