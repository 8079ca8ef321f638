package model

import (
	"time"

	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserName string    `gorm:"column:user_name;type:varchar(50);not null" json:"user_name"`
	Email    string    `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`
	Password string    `gorm:"column:password;type:varchar(250);not null" json:"-"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;default:'staff'" json:"role"`

	// Tautan ke profil domain; wajib untuk role student/counselor.
	StudentID   *uuid.UUID `gorm:"column:student_id;type:uuid" json:"student_id,omitempty"`
	CounselorID *uuid.UUID `gorm:"column:counselor_id;type:uuid" json:"counselor_id,omitempty"`

	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStaff
	}
	u.IsActive = true
}
