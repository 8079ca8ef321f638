package dto

import (
	"time"

	"github.com/google/uuid"

	m "konselingku_backend/internals/features/school/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentNIS     string  `json:"student_nis" validate:"required,max=30"`
	StudentName    string  `json:"student_name" validate:"required,max=100"`
	StudentEmail   *string `json:"student_email" validate:"omitempty,email"`
	StudentTingkat string  `json:"student_tingkat" validate:"required,max=10"`
	StudentKelas   string  `json:"student_kelas" validate:"required,max=30"`

	StudentAcademicStatus *string `json:"student_academic_status" validate:"omitempty,oneof=good warning critical"`
}

// Update (partial)
type UpdateStudentRequest struct {
	StudentNIS            *string `json:"student_nis" validate:"omitempty,max=30"`
	StudentName           *string `json:"student_name" validate:"omitempty,max=100"`
	StudentEmail          *string `json:"student_email" validate:"omitempty,email"`
	StudentTingkat        *string `json:"student_tingkat" validate:"omitempty,max=10"`
	StudentKelas          *string `json:"student_kelas" validate:"omitempty,max=30"`
	StudentAcademicStatus *string `json:"student_academic_status" validate:"omitempty,oneof=good warning critical"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentID             uuid.UUID  `json:"student_id"`
	StudentNIS            string     `json:"student_nis"`
	StudentName           string     `json:"student_name"`
	StudentEmail          *string    `json:"student_email,omitempty"`
	StudentTingkat        string     `json:"student_tingkat"`
	StudentKelas          string     `json:"student_kelas"`
	StudentAcademicStatus string     `json:"student_academic_status"`
	StudentCreatedAt      time.Time  `json:"student_created_at"`
	StudentDeletedAt      *time.Time `json:"student_deleted_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel() m.StudentModel {
	status := "good"
	if r.StudentAcademicStatus != nil {
		status = *r.StudentAcademicStatus
	}
	return m.StudentModel{
		StudentNIS:            r.StudentNIS,
		StudentName:           r.StudentName,
		StudentEmail:          r.StudentEmail,
		StudentTingkat:        r.StudentTingkat,
		StudentKelas:          r.StudentKelas,
		StudentAcademicStatus: status,
	}
}

func (r UpdateStudentRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.StudentNIS != nil {
		updates["student_nis"] = *r.StudentNIS
	}
	if r.StudentName != nil {
		updates["student_name"] = *r.StudentName
	}
	if r.StudentEmail != nil {
		updates["student_email"] = *r.StudentEmail
	}
	if r.StudentTingkat != nil {
		updates["student_tingkat"] = *r.StudentTingkat
	}
	if r.StudentKelas != nil {
		updates["student_kelas"] = *r.StudentKelas
	}
	if r.StudentAcademicStatus != nil {
		updates["student_academic_status"] = *r.StudentAcademicStatus
	}
	return updates
}

func FromStudentModel(mdl m.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:             mdl.StudentID,
		StudentNIS:            mdl.StudentNIS,
		StudentName:           mdl.StudentName,
		StudentEmail:          mdl.StudentEmail,
		StudentTingkat:        mdl.StudentTingkat,
		StudentKelas:          mdl.StudentKelas,
		StudentAcademicStatus: mdl.StudentAcademicStatus,
		StudentCreatedAt:      mdl.StudentCreatedAt,
	}
	if mdl.StudentDeletedAt.Valid {
		t := mdl.StudentDeletedAt.Time
		resp.StudentDeletedAt = &t
	}
	return resp
}

func FromStudentModels(mdls []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromStudentModel(mdl))
	}
	return out
}
