package dto

import (
	"time"

	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/model"
)

type CreateSessionRequest struct {
	SessionStudentID   uuid.UUID `json:"session_student_id" validate:"required"`
	SessionCounselorID uuid.UUID `json:"session_counselor_id" validate:"required"`
	SessionDate        time.Time `json:"session_date" validate:"required"`
	SessionDuration    int       `json:"session_duration" validate:"required,gt=0,max=480"`
	SessionType        string    `json:"session_type" validate:"required,oneof=academic behavioral mental-health career social"`
	SessionNotes       string    `json:"session_notes" validate:"max=5000"`
}

type UpdateSessionRequest struct {
	SessionDate      *time.Time `json:"session_date"`
	SessionDuration  *int       `json:"session_duration" validate:"omitempty,gt=0,max=480"`
	SessionType      *string    `json:"session_type" validate:"omitempty,oneof=academic behavioral mental-health career social"`
	SessionNotes     *string    `json:"session_notes" validate:"omitempty,max=5000"`
	SessionOutcome   *string    `json:"session_outcome" validate:"omitempty,oneof=positive neutral negative"`
	SessionNextSteps *string    `json:"session_next_steps" validate:"omitempty,max=5000"`
}

type RejectSessionRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=2000"`
}

type SessionResponse struct {
	SessionID          uuid.UUID `json:"session_id"`
	SessionStudentID   uuid.UUID `json:"session_student_id"`
	StudentName        string    `json:"student_name,omitempty"`
	SessionCounselorID uuid.UUID `json:"session_counselor_id"`
	CounselorName      string    `json:"counselor_name,omitempty"`

	SessionDate     time.Time `json:"session_date"`
	SessionEnd      time.Time `json:"session_end"`
	SessionDuration int       `json:"session_duration"`

	SessionType      string  `json:"session_type"`
	SessionNotes     string  `json:"session_notes"`
	SessionOutcome   *string `json:"session_outcome,omitempty"`
	SessionNextSteps *string `json:"session_next_steps,omitempty"`

	SessionApprovalStatus  string     `json:"session_approval_status"`
	SessionApprovedBy      *uuid.UUID `json:"session_approved_by,omitempty"`
	SessionApprovedAt      *time.Time `json:"session_approved_at,omitempty"`
	SessionRejectionReason *string    `json:"session_rejection_reason,omitempty"`

	SessionCreatedAt time.Time `json:"session_created_at"`
	SessionUpdatedAt time.Time `json:"session_updated_at"`
}

func (r CreateSessionRequest) ToModel(createdBy uuid.UUID) model.SessionModel {
	return model.SessionModel{
		SessionStudentID:      r.SessionStudentID,
		SessionCounselorID:    r.SessionCounselorID,
		SessionDate:           r.SessionDate,
		SessionDuration:       r.SessionDuration,
		SessionType:           r.SessionType,
		SessionNotes:          r.SessionNotes,
		SessionApprovalStatus: constants.ApprovalPending,
		SessionCreatedBy:      createdBy,
	}
}

func (r UpdateSessionRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.SessionDate != nil {
		updates["session_date"] = *r.SessionDate
	}
	if r.SessionDuration != nil {
		updates["session_duration"] = *r.SessionDuration
	}
	if r.SessionType != nil {
		updates["session_type"] = *r.SessionType
	}
	if r.SessionNotes != nil {
		updates["session_notes"] = *r.SessionNotes
	}
	if r.SessionOutcome != nil {
		updates["session_outcome"] = *r.SessionOutcome
	}
	if r.SessionNextSteps != nil {
		updates["session_next_steps"] = *r.SessionNextSteps
	}
	return updates
}

func FromSessionModel(m model.SessionModel) SessionResponse {
	resp := SessionResponse{
		SessionID:              m.SessionID,
		SessionStudentID:       m.SessionStudentID,
		SessionCounselorID:     m.SessionCounselorID,
		SessionDate:            m.SessionDate,
		SessionEnd:             m.End(),
		SessionDuration:        m.SessionDuration,
		SessionType:            m.SessionType,
		SessionNotes:           m.SessionNotes,
		SessionOutcome:         m.SessionOutcome,
		SessionNextSteps:       m.SessionNextSteps,
		SessionApprovalStatus:  m.SessionApprovalStatus,
		SessionApprovedBy:      m.SessionApprovedBy,
		SessionApprovedAt:      m.SessionApprovedAt,
		SessionRejectionReason: m.SessionRejectionReason,
		SessionCreatedAt:       m.SessionCreatedAt,
		SessionUpdatedAt:       m.SessionUpdatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.StudentName
	}
	if m.Counselor != nil {
		resp.CounselorName = m.Counselor.CounselorName
	}
	return resp
}

func FromSessionModels(models []model.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromSessionModel(m))
	}
	return out
}
