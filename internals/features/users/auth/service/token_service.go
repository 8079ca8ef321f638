// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"konselingku_backend/internals/configs"
	authModel "konselingku_backend/internals/features/users/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// IssueAccessToken membuat JWT access dengan klaim role + profil tertaut.
func IssueAccessToken(u authModel.UserModel) (token string, expiresAt time.Time, err error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt = time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}
	if u.StudentID != nil {
		claims["student_id"] = u.StudentID.String()
	}
	if u.CounselorID != nil {
		claims["counselor_id"] = u.CounselorID.String()
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return token, expiresAt, nil
}

// IssueRefreshToken membuat refresh JWT dan menyimpan hash-nya di DB (rotasi).
func IssueRefreshToken(db *gorm.DB, u authModel.UserModel) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	exp := time.Now().Add(refreshTTLDefault)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID.String(),
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	rec := authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: ComputeRefreshHash(raw, secret),
		ExpiresAt: exp,
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}
	return raw, nil
}

// ComputeRefreshHash: HMAC-SHA256 supaya DB tidak menyimpan token mentah.
func ComputeRefreshHash(raw, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

// ParseRefreshToken memverifikasi refresh JWT dan balikin subject (user id string).
func ParseRefreshToken(raw string) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}
	return sub, nil
}

// DeleteRefreshTokenByRaw hapus record berdasarkan hash token (rotasi).
func DeleteRefreshTokenByRaw(db *gorm.DB, raw string) error {
	secret, err := getRefreshSecret()
	if err != nil {
		return err
	}
	h := ComputeRefreshHash(raw, secret)
	return db.Where("token_hash = ?", h).Delete(&authModel.RefreshToken{}).Error
}

// RefreshTokenExists cek hash refresh ada & belum revoked.
func RefreshTokenExists(db *gorm.DB, raw string) (bool, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return false, err
	}
	h := ComputeRefreshHash(raw, secret)
	var count int64
	if err := db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", h, time.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// BlacklistAccessToken memasukkan access token ke blacklist (logout).
func BlacklistAccessToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	rec := authModel.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
	return db.Create(&rec).Error
}

// IsTokenBlacklisted dipakai middleware AuthJWT.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var count int64
		err := db.Model(&authModel.TokenBlacklist{}).
			Where("token = ?", rawToken).
			Count(&count).Error
		return count > 0, err
	}
}
