package model

import (
	"time"

	"github.com/google/uuid"

	counselorModel "konselingku_backend/internals/features/school/counselors/model"
	studentModel "konselingku_backend/internals/features/school/students/model"
)

// SessionModel menyimpan satu sesi konseling terjadwal.
// Sesi dihapus permanen (bukan soft delete) karena riwayat persetujuan
// sudah tercatat pada kolom approval.
type SessionModel struct {
	SessionID          uuid.UUID `gorm:"column:session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	SessionStudentID   uuid.UUID `gorm:"column:session_student_id;type:uuid;not null;index" json:"session_student_id"`
	SessionCounselorID uuid.UUID `gorm:"column:session_counselor_id;type:uuid;not null;index" json:"session_counselor_id"`

	// Waktu mulai sesi. Tanggal + jam disimpan dalam satu kolom timestamptz.
	SessionDate     time.Time `gorm:"column:session_date;not null;index" json:"session_date"`
	SessionDuration int       `gorm:"column:session_duration;not null" json:"session_duration"` // menit

	SessionType      string  `gorm:"column:session_type;type:varchar(30);not null" json:"session_type"`
	SessionNotes     string  `gorm:"column:session_notes;type:text" json:"session_notes"`
	SessionOutcome   *string `gorm:"column:session_outcome;type:varchar(20)" json:"session_outcome,omitempty"`
	SessionNextSteps *string `gorm:"column:session_next_steps;type:text" json:"session_next_steps,omitempty"`

	SessionApprovalStatus  string     `gorm:"column:session_approval_status;type:varchar(20);not null;default:'pending';index" json:"session_approval_status"`
	SessionApprovedBy      *uuid.UUID `gorm:"column:session_approved_by;type:uuid" json:"session_approved_by,omitempty"`
	SessionApprovedAt      *time.Time `gorm:"column:session_approved_at" json:"session_approved_at,omitempty"`
	SessionRejectionReason *string    `gorm:"column:session_rejection_reason;type:text" json:"session_rejection_reason,omitempty"`

	SessionCreatedBy uuid.UUID `gorm:"column:session_created_by;type:uuid;not null" json:"session_created_by"`
	SessionCreatedAt time.Time `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`

	Student   *studentModel.StudentModel     `gorm:"foreignKey:SessionStudentID;references:StudentID" json:"student,omitempty"`
	Counselor *counselorModel.CounselorModel `gorm:"foreignKey:SessionCounselorID;references:CounselorID" json:"counselor,omitempty"`
}

func (SessionModel) TableName() string {
	return "counseling_sessions"
}

// End mengembalikan waktu selesai sesi.
func (m SessionModel) End() time.Time {
	return m.SessionDate.Add(time.Duration(m.SessionDuration) * time.Minute)
}
