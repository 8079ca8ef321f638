package dto

import (
	"time"

	"github.com/google/uuid"

	"konselingku_backend/internals/features/users/auth/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin counselor student staff"`

	// wajib untuk role student/counselor, supaya sesi bisa di-scope ke profilnya
	StudentID   *uuid.UUID `json:"student_id"`
	CounselorID *uuid.UUID `json:"counselor_id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserName    string     `json:"user_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	CounselorID *uuid.UUID `json:"counselor_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func FromUserModel(u model.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		Role:        u.Role,
		StudentID:   u.StudentID,
		CounselorID: u.CounselorID,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
