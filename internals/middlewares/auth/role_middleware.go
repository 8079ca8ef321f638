// internals/middlewares/auth/role_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"konselingku_backend/internals/constants"
	helperAuth "konselingku_backend/internals/helpers/auth"
)

// RequireRoles hanya meloloskan role yang ada di daftar.
// featureName dipakai untuk pesan error ("sesi konseling", dsb).
func RequireRoles(featureName string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helperAuth.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		log.Printf("🔐 akses ditolak | role=%s | path=%s", role, c.Path())
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff(featureName))
	}
}

// IsAdmin: khusus admin.
func IsAdmin(featureName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, constants.RoleAdmin) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(featureName))
	}
}

// IsCounselor: khusus counselor (approve/reject sesi, isi outcome).
func IsCounselor(featureName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, constants.RoleCounselor) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorCounselor(featureName))
	}
}
