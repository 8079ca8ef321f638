package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CounselorModel struct {
	CounselorID             uuid.UUID `gorm:"column:counselor_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"counselor_id"`
	CounselorNIP            string    `gorm:"column:counselor_nip;type:varchar(30);unique;not null" json:"counselor_nip"`
	CounselorName           string    `gorm:"column:counselor_name;type:varchar(100);not null" json:"counselor_name"`
	CounselorEmail          *string   `gorm:"column:counselor_email;type:varchar(100)" json:"counselor_email,omitempty"`
	CounselorPhone          *string   `gorm:"column:counselor_phone;type:varchar(30)" json:"counselor_phone,omitempty"`
	CounselorSpecialization *string   `gorm:"column:counselor_specialization;type:varchar(100)" json:"counselor_specialization,omitempty"`
	CounselorIsActive       bool      `gorm:"column:counselor_is_active;default:true" json:"counselor_is_active"`
	CounselorCreatedAt      time.Time `gorm:"column:counselor_created_at;autoCreateTime" json:"counselor_created_at"`
	CounselorUpdatedAt      time.Time `gorm:"column:counselor_updated_at;autoUpdateTime" json:"counselor_updated_at"`

	CounselorDeletedAt gorm.DeletedAt `gorm:"column:counselor_deleted_at;index" json:"-"`
}

func (CounselorModel) TableName() string {
	return "counselors"
}
