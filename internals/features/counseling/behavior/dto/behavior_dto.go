package dto

import (
	"time"

	"github.com/google/uuid"

	"konselingku_backend/internals/features/counseling/behavior/model"
)

type CreateBehaviorRequest struct {
	BehaviorStudentID   uuid.UUID `json:"behavior_student_id" validate:"required"`
	BehaviorDate        time.Time `json:"behavior_date" validate:"required"`
	BehaviorTitle       string    `json:"behavior_title" validate:"required,max=150"`
	BehaviorCategory    string    `json:"behavior_category" validate:"required,oneof=violation achievement"`
	BehaviorDescription string    `json:"behavior_description" validate:"required,max=5000"`
	BehaviorPoints      int       `json:"behavior_points" validate:"required,ne=0,min=-100,max=100"`
}

type UpdateBehaviorRequest struct {
	BehaviorTitle       *string `json:"behavior_title" validate:"omitempty,max=150"`
	BehaviorCategory    *string `json:"behavior_category" validate:"omitempty,oneof=violation achievement"`
	BehaviorDescription *string `json:"behavior_description" validate:"omitempty,max=5000"`
	BehaviorPoints      *int    `json:"behavior_points" validate:"omitempty,ne=0,min=-100,max=100"`
}

type BehaviorResponse struct {
	BehaviorID          uuid.UUID `json:"behavior_id"`
	BehaviorStudentID   uuid.UUID `json:"behavior_student_id"`
	StudentName         string    `json:"student_name,omitempty"`
	BehaviorDate        time.Time `json:"behavior_date"`
	BehaviorTitle       string    `json:"behavior_title"`
	BehaviorCategory    string    `json:"behavior_category"`
	BehaviorDescription string    `json:"behavior_description"`
	BehaviorPoints      int       `json:"behavior_points"`
	CreatedAt           time.Time `json:"created_at"`
}

// BehaviorSummary adalah rekap perilaku satu siswa.
type BehaviorSummary struct {
	StudentID       uuid.UUID      `json:"student_id"`
	TotalPoints     int            `json:"total_points"`
	PositiveCount   int            `json:"positive_count"`
	NegativeCount   int            `json:"negative_count"`
	CountByCategory map[string]int `json:"count_by_category"`
}

func (r CreateBehaviorRequest) ToModel(recordedBy uuid.UUID) model.BehaviorModel {
	return model.BehaviorModel{
		BehaviorStudentID:   r.BehaviorStudentID,
		BehaviorDate:        r.BehaviorDate,
		BehaviorTitle:       r.BehaviorTitle,
		BehaviorCategory:    r.BehaviorCategory,
		BehaviorDescription: r.BehaviorDescription,
		BehaviorPoints:      r.BehaviorPoints,
		BehaviorRecordedBy:  recordedBy,
	}
}

func (r UpdateBehaviorRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.BehaviorTitle != nil {
		updates["behavior_title"] = *r.BehaviorTitle
	}
	if r.BehaviorCategory != nil {
		updates["behavior_category"] = *r.BehaviorCategory
	}
	if r.BehaviorDescription != nil {
		updates["behavior_description"] = *r.BehaviorDescription
	}
	if r.BehaviorPoints != nil {
		updates["behavior_points"] = *r.BehaviorPoints
	}
	return updates
}

// Summarize menghitung rekap dari daftar catatan satu siswa.
func Summarize(studentID uuid.UUID, records []model.BehaviorModel) BehaviorSummary {
	summary := BehaviorSummary{
		StudentID:       studentID,
		CountByCategory: map[string]int{},
	}
	for _, r := range records {
		summary.TotalPoints += r.BehaviorPoints
		if r.BehaviorPoints > 0 {
			summary.PositiveCount++
		} else {
			summary.NegativeCount++
		}
		summary.CountByCategory[r.BehaviorCategory]++
	}
	return summary
}

func FromBehaviorModel(m model.BehaviorModel) BehaviorResponse {
	resp := BehaviorResponse{
		BehaviorID:          m.BehaviorID,
		BehaviorStudentID:   m.BehaviorStudentID,
		BehaviorDate:        m.BehaviorDate,
		BehaviorTitle:       m.BehaviorTitle,
		BehaviorCategory:    m.BehaviorCategory,
		BehaviorDescription: m.BehaviorDescription,
		BehaviorPoints:      m.BehaviorPoints,
		CreatedAt:           m.BehaviorCreatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.StudentName
	}
	return resp
}

func FromBehaviorModels(models []model.BehaviorModel) []BehaviorResponse {
	out := make([]BehaviorResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromBehaviorModel(m))
	}
	return out
}
