package dto

import (
	"testing"

	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/behavior/model"
)

func TestSummarize(t *testing.T) {
	studentID := uuid.New()
	records := []model.BehaviorModel{
		{BehaviorPoints: 10, BehaviorCategory: constants.BehaviorAchievement},
		{BehaviorPoints: 5, BehaviorCategory: constants.BehaviorAchievement},
		{BehaviorPoints: -15, BehaviorCategory: constants.BehaviorViolation},
		{BehaviorPoints: -20, BehaviorCategory: constants.BehaviorViolation},
	}

	s := Summarize(studentID, records)

	if s.StudentID != studentID {
		t.Errorf("StudentID = %v, want %v", s.StudentID, studentID)
	}
	if s.TotalPoints != -20 {
		t.Errorf("TotalPoints = %d, want -20", s.TotalPoints)
	}
	if s.PositiveCount != 2 {
		t.Errorf("PositiveCount = %d, want 2", s.PositiveCount)
	}
	if s.NegativeCount != 2 {
		t.Errorf("NegativeCount = %d, want 2", s.NegativeCount)
	}
	if s.CountByCategory[constants.BehaviorAchievement] != 2 {
		t.Errorf("achievement = %d, want 2", s.CountByCategory[constants.BehaviorAchievement])
	}
	if s.CountByCategory[constants.BehaviorViolation] != 2 {
		t.Errorf("violation = %d, want 2", s.CountByCategory[constants.BehaviorViolation])
	}
}

func TestSummarizeKosong(t *testing.T) {
	s := Summarize(uuid.New(), nil)
	if s.TotalPoints != 0 || s.PositiveCount != 0 || s.NegativeCount != 0 {
		t.Errorf("rekap kosong = %+v, semua harus 0", s)
	}
	if s.CountByCategory == nil {
		t.Error("CountByCategory harus map kosong, bukan nil")
	}
}
