package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/users/auth/dto"
	"konselingku_backend/internals/features/users/auth/model"
	"konselingku_backend/internals/features/users/auth/service"
	helper "konselingku_backend/internals/helpers"
	helperAuth "konselingku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// role student/counselor wajib tertaut ke profilnya
	if req.Role == constants.RoleStudent && req.StudentID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib untuk role student")
	}
	if req.Role == constants.RoleCounselor && req.CounselorID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "counselor_id wajib untuk role counselor")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:    req.UserName,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    string(hashed),
		Role:        req.Role,
		StudentID:   req.StudentID,
		CounselorID: req.CounselorID,
	}
	user.SetDefaultValues()

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Akun berhasil dibuat", dto.FromUserModel(user))
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, expiresAt, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
		User:        dto.FromUserModel(user),
	})
}

/* ===================== REFRESH ===================== */
// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	sub, err := service.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	exists, err := service.RefreshTokenExists(ctrl.DB, refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama
	if err := service.DeleteRefreshTokenByRaw(ctrl.DB, refreshCookie); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	access, expiresAt, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Token diperbarui", dto.LoginResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
		User:        dto.FromUserModel(user),
	})
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		// blacklist sampai 24 jam ke depan; scheduler yang membersihkan
		if err := service.BlacklistAccessToken(ctrl.DB, raw, time.Now().Add(24*time.Hour)); err != nil {
			log.Printf("[logout] blacklist failed: %v", err)
		}
	}
	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		_ = service.DeleteRefreshTokenByRaw(ctrl.DB, refresh)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ===================== ME ===================== */
// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromUserModel(user))
}

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}
