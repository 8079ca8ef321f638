package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/assessments/model"
)

type CreateAssessmentRequest struct {
	AssessmentStudentID   uuid.UUID      `json:"assessment_student_id" validate:"required"`
	AssessmentCounselorID uuid.UUID      `json:"assessment_counselor_id" validate:"required"`
	AssessmentInstrument  string         `json:"assessment_instrument" validate:"required,max=50"`
	AssessmentDate        time.Time      `json:"assessment_date" validate:"required"`
	AssessmentAnswers     datatypes.JSON `json:"assessment_answers" validate:"required"`
	AssessmentScore       int            `json:"assessment_score" validate:"gte=0"`
	AssessmentNotes       string         `json:"assessment_notes" validate:"max=5000"`
}

type UpdateAssessmentRequest struct {
	AssessmentAnswers *datatypes.JSON `json:"assessment_answers"`
	AssessmentScore   *int            `json:"assessment_score" validate:"omitempty,gte=0"`
	AssessmentNotes   *string         `json:"assessment_notes" validate:"omitempty,max=5000"`
}

type AssessmentResponse struct {
	AssessmentID          uuid.UUID      `json:"assessment_id"`
	AssessmentStudentID   uuid.UUID      `json:"assessment_student_id"`
	StudentName           string         `json:"student_name,omitempty"`
	AssessmentCounselorID uuid.UUID      `json:"assessment_counselor_id"`
	CounselorName         string         `json:"counselor_name,omitempty"`
	AssessmentInstrument  string         `json:"assessment_instrument"`
	AssessmentDate        time.Time      `json:"assessment_date"`
	AssessmentAnswers     datatypes.JSON `json:"assessment_answers"`
	AssessmentScore       int            `json:"assessment_score"`
	AssessmentRiskLevel   string         `json:"assessment_risk_level"`
	AssessmentNotes       string         `json:"assessment_notes"`
	CreatedAt             time.Time      `json:"created_at"`
}

// RiskLevelFromScore memetakan skor total ke tingkat risiko.
// Ambang: 0-9 low, 10-19 moderate, 20+ high.
func RiskLevelFromScore(score int) string {
	switch {
	case score >= 20:
		return constants.RiskHigh
	case score >= 10:
		return constants.RiskModerate
	default:
		return constants.RiskLow
	}
}

func (r CreateAssessmentRequest) ToModel() model.AssessmentModel {
	return model.AssessmentModel{
		AssessmentStudentID:   r.AssessmentStudentID,
		AssessmentCounselorID: r.AssessmentCounselorID,
		AssessmentInstrument:  r.AssessmentInstrument,
		AssessmentDate:        r.AssessmentDate,
		AssessmentAnswers:     r.AssessmentAnswers,
		AssessmentScore:       r.AssessmentScore,
		AssessmentRiskLevel:   RiskLevelFromScore(r.AssessmentScore),
		AssessmentNotes:       r.AssessmentNotes,
	}
}

func (r UpdateAssessmentRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.AssessmentAnswers != nil {
		updates["assessment_answers"] = *r.AssessmentAnswers
	}
	if r.AssessmentScore != nil {
		updates["assessment_score"] = *r.AssessmentScore
		updates["assessment_risk_level"] = RiskLevelFromScore(*r.AssessmentScore)
	}
	if r.AssessmentNotes != nil {
		updates["assessment_notes"] = *r.AssessmentNotes
	}
	return updates
}

func FromAssessmentModel(m model.AssessmentModel) AssessmentResponse {
	resp := AssessmentResponse{
		AssessmentID:          m.AssessmentID,
		AssessmentStudentID:   m.AssessmentStudentID,
		AssessmentCounselorID: m.AssessmentCounselorID,
		AssessmentInstrument:  m.AssessmentInstrument,
		AssessmentDate:        m.AssessmentDate,
		AssessmentAnswers:     m.AssessmentAnswers,
		AssessmentScore:       m.AssessmentScore,
		AssessmentRiskLevel:   m.AssessmentRiskLevel,
		AssessmentNotes:       m.AssessmentNotes,
		CreatedAt:             m.AssessmentCreatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.StudentName
	}
	if m.Counselor != nil {
		resp.CounselorName = m.Counselor.CounselorName
	}
	return resp
}

func FromAssessmentModels(models []model.AssessmentModel) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromAssessmentModel(m))
	}
	return out
}
