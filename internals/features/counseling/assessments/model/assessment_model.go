package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	counselorModel "konselingku_backend/internals/features/school/counselors/model"
	studentModel "konselingku_backend/internals/features/school/students/model"
)

// AssessmentModel menyimpan hasil asesmen kesehatan mental siswa.
// Jawaban per butir disimpan mentah sebagai JSON supaya instrumen yang
// berbeda (jumlah butir berbeda) bisa dipakai tanpa migrasi skema.
type AssessmentModel struct {
	AssessmentID          uuid.UUID      `gorm:"column:assessment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assessment_id"`
	AssessmentStudentID   uuid.UUID      `gorm:"column:assessment_student_id;type:uuid;not null;index" json:"assessment_student_id"`
	AssessmentCounselorID uuid.UUID      `gorm:"column:assessment_counselor_id;type:uuid;not null;index" json:"assessment_counselor_id"`
	AssessmentInstrument  string         `gorm:"column:assessment_instrument;type:varchar(50);not null" json:"assessment_instrument"`
	AssessmentDate        time.Time      `gorm:"column:assessment_date;not null;index" json:"assessment_date"`
	AssessmentAnswers     datatypes.JSON `gorm:"column:assessment_answers;type:jsonb" json:"assessment_answers"`
	AssessmentScore       int            `gorm:"column:assessment_score;not null" json:"assessment_score"`
	AssessmentRiskLevel   string         `gorm:"column:assessment_risk_level;type:varchar(20);not null" json:"assessment_risk_level"`
	AssessmentNotes       string         `gorm:"column:assessment_notes;type:text" json:"assessment_notes"`
	AssessmentCreatedAt   time.Time      `gorm:"column:assessment_created_at;autoCreateTime" json:"assessment_created_at"`
	AssessmentUpdatedAt   time.Time      `gorm:"column:assessment_updated_at;autoUpdateTime" json:"assessment_updated_at"`

	Student   *studentModel.StudentModel     `gorm:"foreignKey:AssessmentStudentID;references:StudentID" json:"student,omitempty"`
	Counselor *counselorModel.CounselorModel `gorm:"foreignKey:AssessmentCounselorID;references:CounselorID" json:"counselor,omitempty"`
}

func (AssessmentModel) TableName() string {
	return "mental_health_assessments"
}
