package dto

import (
	"testing"

	"konselingku_backend/internals/constants"
)

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, constants.RiskLow},
		{5, constants.RiskLow},
		{9, constants.RiskLow},
		{10, constants.RiskModerate},
		{15, constants.RiskModerate},
		{19, constants.RiskModerate},
		{20, constants.RiskHigh},
		{27, constants.RiskHigh},
	}

	for _, tt := range tests {
		if got := RiskLevelFromScore(tt.score); got != tt.want {
			t.Errorf("RiskLevelFromScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestUpdateSkorIkutUbahRisiko(t *testing.T) {
	score := 22
	req := UpdateAssessmentRequest{AssessmentScore: &score}

	updates := req.ToUpdates()
	if updates["assessment_score"] != 22 {
		t.Errorf("assessment_score = %v, want 22", updates["assessment_score"])
	}
	if updates["assessment_risk_level"] != constants.RiskHigh {
		t.Errorf("assessment_risk_level = %v, want %s", updates["assessment_risk_level"], constants.RiskHigh)
	}
}
