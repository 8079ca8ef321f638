package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/model"
	counselorModel "konselingku_backend/internals/features/school/counselors/model"
)

func TestOverlaps(t *testing.T) {
	base := mustTime(t, "2026-08-25 10:00")

	tests := []struct {
		name               string
		candStart, candEnd time.Time
		exStart, exEnd     time.Time
		want               bool
	}{
		{
			"tumpang tindih sebagian",
			base, base.Add(60 * time.Minute),
			base.Add(30 * time.Minute), base.Add(90 * time.Minute),
			true,
		},
		{
			"kandidat di dalam sesi lama",
			base.Add(15 * time.Minute), base.Add(30 * time.Minute),
			base, base.Add(60 * time.Minute),
			true,
		},
		{
			"sesi lama di dalam kandidat",
			base, base.Add(120 * time.Minute),
			base.Add(30 * time.Minute), base.Add(60 * time.Minute),
			true,
		},
		{
			"berakhir tepat saat sesi lama mulai",
			base, base.Add(60 * time.Minute),
			base.Add(60 * time.Minute), base.Add(120 * time.Minute),
			false,
		},
		{
			"mulai tepat saat sesi lama berakhir",
			base.Add(60 * time.Minute), base.Add(120 * time.Minute),
			base, base.Add(60 * time.Minute),
			false,
		},
		{
			"sepenuhnya terpisah",
			base, base.Add(30 * time.Minute),
			base.Add(120 * time.Minute), base.Add(180 * time.Minute),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.candStart, tt.candEnd, tt.exStart, tt.exEnd)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	start := mustTime(t, "2026-08-25 10:00")
	existingID := uuid.New()

	existing := []model.SessionModel{
		{
			SessionID:             existingID,
			SessionDate:           start,
			SessionDuration:       60,
			SessionApprovalStatus: constants.ApprovalApproved,
		},
	}

	t.Run("bentrok terdeteksi", func(t *testing.T) {
		hit := FindConflict(existing, start.Add(30*time.Minute), start.Add(90*time.Minute), uuid.Nil)
		if hit == nil {
			t.Fatal("FindConflict() = nil, want bentrok")
		}
		if hit.SessionID != existingID {
			t.Errorf("FindConflict() id = %v, want %v", hit.SessionID, existingID)
		}
	})

	t.Run("sesi sendiri dikecualikan saat reschedule", func(t *testing.T) {
		hit := FindConflict(existing, start.Add(30*time.Minute), start.Add(90*time.Minute), existingID)
		if hit != nil {
			t.Errorf("FindConflict() = %+v, want nil", hit)
		}
	})

	t.Run("sesi ditolak tidak memblokir", func(t *testing.T) {
		rejected := []model.SessionModel{
			{
				SessionID:             uuid.New(),
				SessionDate:           start,
				SessionDuration:       60,
				SessionApprovalStatus: constants.ApprovalRejected,
			},
		}
		hit := FindConflict(rejected, start, start.Add(60*time.Minute), uuid.Nil)
		if hit != nil {
			t.Errorf("FindConflict() = %+v, want nil", hit)
		}
	})

	t.Run("sesi pending tetap memblokir", func(t *testing.T) {
		pending := []model.SessionModel{
			{
				SessionID:             uuid.New(),
				SessionDate:           start,
				SessionDuration:       60,
				SessionApprovalStatus: constants.ApprovalPending,
			},
		}
		hit := FindConflict(pending, start, start.Add(60*time.Minute), uuid.Nil)
		if hit == nil {
			t.Error("FindConflict() = nil, want bentrok")
		}
	})
}

func TestConflictMessage(t *testing.T) {
	sess := model.SessionModel{
		SessionDate:     mustTime(t, "2026-08-25 10:00"),
		SessionDuration: 60,
		Counselor:       &counselorModel.CounselorModel{CounselorName: "Bu Ratna"},
	}

	msg := ConflictMessage(sess)
	if !strings.Contains(msg, "10:00 AM") {
		t.Errorf("ConflictMessage() = %q, harus memuat jam 12-jam %q", msg, "10:00 AM")
	}
	if !strings.Contains(msg, "Bu Ratna") {
		t.Errorf("ConflictMessage() = %q, harus memuat nama konselor", msg)
	}

	sore := model.SessionModel{SessionDate: mustTime(t, "2026-08-25 14:30")}
	if msg := ConflictMessage(sore); !strings.Contains(msg, "2:30 PM") {
		t.Errorf("ConflictMessage() = %q, harus memuat %q", msg, "2:30 PM")
	}
}
