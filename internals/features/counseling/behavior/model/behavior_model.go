package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "konselingku_backend/internals/features/school/students/model"
)

// BehaviorModel mencatat satu kejadian perilaku siswa. Poin bisa
// positif (prestasi) atau negatif (pelanggaran).
type BehaviorModel struct {
	BehaviorID          uuid.UUID `gorm:"column:behavior_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"behavior_id"`
	BehaviorStudentID   uuid.UUID `gorm:"column:behavior_student_id;type:uuid;not null;index" json:"behavior_student_id"`
	BehaviorDate        time.Time `gorm:"column:behavior_date;not null;index" json:"behavior_date"`
	BehaviorTitle       string    `gorm:"column:behavior_title;type:varchar(150);not null" json:"behavior_title"`
	BehaviorCategory    string    `gorm:"column:behavior_category;type:varchar(20);not null;index" json:"behavior_category"`
	BehaviorDescription string    `gorm:"column:behavior_description;type:text;not null" json:"behavior_description"`
	BehaviorPoints      int       `gorm:"column:behavior_points;not null" json:"behavior_points"`
	BehaviorRecordedBy  uuid.UUID `gorm:"column:behavior_recorded_by;type:uuid;not null" json:"behavior_recorded_by"`
	BehaviorCreatedAt   time.Time `gorm:"column:behavior_created_at;autoCreateTime" json:"behavior_created_at"`
	BehaviorUpdatedAt   time.Time `gorm:"column:behavior_updated_at;autoUpdateTime" json:"behavior_updated_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:BehaviorStudentID;references:StudentID" json:"student,omitempty"`
}

func (BehaviorModel) TableName() string {
	return "behavior_records"
}
