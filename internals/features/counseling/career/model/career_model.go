package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	counselorModel "konselingku_backend/internals/features/school/counselors/model"
	studentModel "konselingku_backend/internals/features/school/students/model"
)

// CareerModel menyimpan satu catatan bimbingan karir: daftar minat
// siswa (JSON), tujuan setelah lulus, dan rekomendasi konselor.
type CareerModel struct {
	CareerID             uuid.UUID      `gorm:"column:career_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"career_id"`
	CareerStudentID      uuid.UUID      `gorm:"column:career_student_id;type:uuid;not null;index" json:"career_student_id"`
	CareerCounselorID    uuid.UUID      `gorm:"column:career_counselor_id;type:uuid;not null;index" json:"career_counselor_id"`
	CareerDate           time.Time      `gorm:"column:career_date;not null;index" json:"career_date"`
	CareerInterests      datatypes.JSON `gorm:"column:career_interests;type:jsonb;not null" json:"career_interests"`
	CareerGoal           string         `gorm:"column:career_goal;type:text" json:"career_goal"`
	CareerRecommendation string         `gorm:"column:career_recommendation;type:text" json:"career_recommendation"`
	CareerNotes          string         `gorm:"column:career_notes;type:text" json:"career_notes"`
	CareerCreatedAt      time.Time      `gorm:"column:career_created_at;autoCreateTime" json:"career_created_at"`
	CareerUpdatedAt      time.Time      `gorm:"column:career_updated_at;autoUpdateTime" json:"career_updated_at"`

	Student   *studentModel.StudentModel     `gorm:"foreignKey:CareerStudentID;references:StudentID" json:"student,omitempty"`
	Counselor *counselorModel.CounselorModel `gorm:"foreignKey:CareerCounselorID;references:CounselorID" json:"counselor,omitempty"`
}

func (CareerModel) TableName() string {
	return "career_guidance_entries"
}
