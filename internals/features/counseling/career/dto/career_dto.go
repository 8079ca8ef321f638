package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"konselingku_backend/internals/features/counseling/career/model"
)

type CreateCareerRequest struct {
	CareerStudentID      uuid.UUID `json:"career_student_id" validate:"required"`
	CareerCounselorID    uuid.UUID `json:"career_counselor_id" validate:"required"`
	CareerDate           time.Time `json:"career_date" validate:"required"`
	CareerInterests      []string  `json:"career_interests" validate:"required,min=1,dive,required,max=100"`
	CareerGoal           string    `json:"career_goal" validate:"max=5000"`
	CareerRecommendation string    `json:"career_recommendation" validate:"max=5000"`
	CareerNotes          string    `json:"career_notes" validate:"max=5000"`
}

type UpdateCareerRequest struct {
	CareerInterests      *[]string `json:"career_interests" validate:"omitempty,min=1,dive,required,max=100"`
	CareerGoal           *string   `json:"career_goal" validate:"omitempty,max=5000"`
	CareerRecommendation *string   `json:"career_recommendation" validate:"omitempty,max=5000"`
	CareerNotes          *string   `json:"career_notes" validate:"omitempty,max=5000"`
}

type CareerResponse struct {
	CareerID             uuid.UUID      `json:"career_id"`
	CareerStudentID      uuid.UUID      `json:"career_student_id"`
	StudentName          string         `json:"student_name,omitempty"`
	CareerCounselorID    uuid.UUID      `json:"career_counselor_id"`
	CounselorName        string         `json:"counselor_name,omitempty"`
	CareerDate           time.Time      `json:"career_date"`
	CareerInterests      datatypes.JSON `json:"career_interests"`
	CareerGoal           string         `json:"career_goal"`
	CareerRecommendation string         `json:"career_recommendation"`
	CareerNotes          string         `json:"career_notes"`
	CreatedAt            time.Time      `json:"created_at"`
}

func (r CreateCareerRequest) ToModel() model.CareerModel {
	interests, _ := json.Marshal(r.CareerInterests)
	return model.CareerModel{
		CareerStudentID:      r.CareerStudentID,
		CareerCounselorID:    r.CareerCounselorID,
		CareerDate:           r.CareerDate,
		CareerInterests:      datatypes.JSON(interests),
		CareerGoal:           r.CareerGoal,
		CareerRecommendation: r.CareerRecommendation,
		CareerNotes:          r.CareerNotes,
	}
}

func (r UpdateCareerRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.CareerInterests != nil {
		interests, _ := json.Marshal(*r.CareerInterests)
		updates["career_interests"] = datatypes.JSON(interests)
	}
	if r.CareerGoal != nil {
		updates["career_goal"] = *r.CareerGoal
	}
	if r.CareerRecommendation != nil {
		updates["career_recommendation"] = *r.CareerRecommendation
	}
	if r.CareerNotes != nil {
		updates["career_notes"] = *r.CareerNotes
	}
	return updates
}

func FromCareerModel(m model.CareerModel) CareerResponse {
	resp := CareerResponse{
		CareerID:             m.CareerID,
		CareerStudentID:      m.CareerStudentID,
		CareerCounselorID:    m.CareerCounselorID,
		CareerDate:           m.CareerDate,
		CareerInterests:      m.CareerInterests,
		CareerGoal:           m.CareerGoal,
		CareerRecommendation: m.CareerRecommendation,
		CareerNotes:          m.CareerNotes,
		CreatedAt:            m.CareerCreatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.StudentName
	}
	if m.Counselor != nil {
		resp.CounselorName = m.Counselor.CounselorName
	}
	return resp
}

func FromCareerModels(models []model.CareerModel) []CareerResponse {
	out := make([]CareerResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromCareerModel(m))
	}
	return out
}
