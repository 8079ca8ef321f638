package dto

import (
	"time"

	"github.com/google/uuid"

	"konselingku_backend/internals/features/school/counselors/model"
)

type CreateCounselorRequest struct {
	CounselorNIP            string  `json:"counselor_nip" validate:"required,max=30"`
	CounselorName           string  `json:"counselor_name" validate:"required,max=100"`
	CounselorEmail          *string `json:"counselor_email" validate:"omitempty,email,max=100"`
	CounselorPhone          *string `json:"counselor_phone" validate:"omitempty,max=30"`
	CounselorSpecialization *string `json:"counselor_specialization" validate:"omitempty,max=100"`
}

type UpdateCounselorRequest struct {
	CounselorName           *string `json:"counselor_name" validate:"omitempty,max=100"`
	CounselorEmail          *string `json:"counselor_email" validate:"omitempty,email,max=100"`
	CounselorPhone          *string `json:"counselor_phone" validate:"omitempty,max=30"`
	CounselorSpecialization *string `json:"counselor_specialization" validate:"omitempty,max=100"`
	CounselorIsActive       *bool   `json:"counselor_is_active"`
}

type CounselorResponse struct {
	CounselorID             uuid.UUID `json:"counselor_id"`
	CounselorNIP            string    `json:"counselor_nip"`
	CounselorName           string    `json:"counselor_name"`
	CounselorEmail          *string   `json:"counselor_email,omitempty"`
	CounselorPhone          *string   `json:"counselor_phone,omitempty"`
	CounselorSpecialization *string   `json:"counselor_specialization,omitempty"`
	CounselorIsActive       bool      `json:"counselor_is_active"`
	CreatedAt               time.Time `json:"created_at"`
}

func (r CreateCounselorRequest) ToModel() model.CounselorModel {
	return model.CounselorModel{
		CounselorNIP:            r.CounselorNIP,
		CounselorName:           r.CounselorName,
		CounselorEmail:          r.CounselorEmail,
		CounselorPhone:          r.CounselorPhone,
		CounselorSpecialization: r.CounselorSpecialization,
		CounselorIsActive:       true,
	}
}

func (r UpdateCounselorRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.CounselorName != nil {
		updates["counselor_name"] = *r.CounselorName
	}
	if r.CounselorEmail != nil {
		updates["counselor_email"] = *r.CounselorEmail
	}
	if r.CounselorPhone != nil {
		updates["counselor_phone"] = *r.CounselorPhone
	}
	if r.CounselorSpecialization != nil {
		updates["counselor_specialization"] = *r.CounselorSpecialization
	}
	if r.CounselorIsActive != nil {
		updates["counselor_is_active"] = *r.CounselorIsActive
	}
	return updates
}

func FromCounselorModel(m model.CounselorModel) CounselorResponse {
	return CounselorResponse{
		CounselorID:             m.CounselorID,
		CounselorNIP:            m.CounselorNIP,
		CounselorName:           m.CounselorName,
		CounselorEmail:          m.CounselorEmail,
		CounselorPhone:          m.CounselorPhone,
		CounselorSpecialization: m.CounselorSpecialization,
		CounselorIsActive:       m.CounselorIsActive,
		CreatedAt:               m.CounselorCreatedAt,
	}
}

func FromCounselorModels(models []model.CounselorModel) []CounselorResponse {
	out := make([]CounselorResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromCounselorModel(m))
	}
	return out
}
