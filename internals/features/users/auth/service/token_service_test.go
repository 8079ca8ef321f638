package service

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"konselingku_backend/internals/configs"
)

func withRefreshSecret(t *testing.T, secret string) {
	t.Helper()
	old := configs.JWTRefreshSecret
	configs.JWTRefreshSecret = secret
	t.Cleanup(func() { configs.JWTRefreshSecret = old })
}

func TestParseRefreshToken(t *testing.T) {
	withRefreshSecret(t, "rahasia-test")

	claims := jwt.MapClaims{
		"sub": "3f2a8c1e-0000-0000-0000-000000000001",
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	t.Run("token HS256 valid", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("rahasia-test"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		sub, err := ParseRefreshToken(raw)
		if err != nil {
			t.Fatalf("ParseRefreshToken: %v", err)
		}
		if sub != claims["sub"] {
			t.Errorf("sub = %q, want %q", sub, claims["sub"])
		}
	})

	t.Run("algoritma selain HMAC ditolak", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("rsa key: %v", err)
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseRefreshToken(raw); err == nil {
			t.Error("token RS256 diterima, harus ditolak")
		}
	})

	t.Run("alg none ditolak", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseRefreshToken(raw); err == nil {
			t.Error("token tanpa tanda tangan diterima, harus ditolak")
		}
	})

	t.Run("tanda tangan salah ditolak", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("rahasia-lain"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseRefreshToken(raw); err == nil {
			t.Error("token dengan secret berbeda diterima, harus ditolak")
		}
	})
}
