package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel students.
// NIS = nomor induk siswa (student number).
type StudentModel struct {
	StudentID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentNIS   string    `gorm:"size:30;not null;uniqueIndex;column:student_nis" json:"student_nis"`
	StudentName  string    `gorm:"size:100;not null;column:student_name" json:"student_name"`
	StudentEmail *string   `gorm:"size:255;column:student_email" json:"student_email,omitempty"`

	// tingkat = grade level (mis. 10/11/12), kelas = rombel (mis. "XI IPA 2")
	StudentTingkat string `gorm:"size:10;not null;column:student_tingkat" json:"student_tingkat"`
	StudentKelas   string `gorm:"size:30;not null;column:student_kelas" json:"student_kelas"`

	StudentAcademicStatus string `gorm:"type:varchar(20);not null;default:'good';column:student_academic_status" json:"student_academic_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
