package constants

import "testing"

func TestSessionCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		field    SessionField
		wantSee  bool
		wantEdit bool
	}{
		{"admin bisa ubah siswa", RoleAdmin, FieldStudent, true, true},
		{"admin lihat hasil tapi tidak ubah", RoleAdmin, FieldOutcome, true, false},
		{"staff lihat tindak lanjut tapi tidak ubah", RoleStaff, FieldNextSteps, true, false},
		{"counselor tidak lihat selector konselor", RoleCounselor, FieldCounselor, false, false},
		{"counselor ubah hasil", RoleCounselor, FieldOutcome, true, true},
		{"counselor ubah tindak lanjut", RoleCounselor, FieldNextSteps, true, true},
		{"student tidak lihat selector siswa", RoleStudent, FieldStudent, false, false},
		{"student tidak lihat hasil", RoleStudent, FieldOutcome, false, false},
		{"student pilih konselor", RoleStudent, FieldCounselor, true, true},
		{"student ubah catatan", RoleStudent, FieldNotes, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSeeField(tt.role, tt.field); got != tt.wantSee {
				t.Errorf("CanSeeField(%s, %s) = %v, want %v", tt.role, tt.field, got, tt.wantSee)
			}
			if got := CanEditField(tt.role, tt.field); got != tt.wantEdit {
				t.Errorf("CanEditField(%s, %s) = %v, want %v", tt.role, tt.field, got, tt.wantEdit)
			}
		})
	}
}

func TestCapabilitiesRoleTakDikenal(t *testing.T) {
	if CanSeeField("hacker", FieldNotes) {
		t.Error("role tak dikenal tidak boleh melihat field apa pun")
	}
	if CanEditField("", FieldDate) {
		t.Error("role kosong tidak boleh mengubah field apa pun")
	}
}

func TestSemuaRolePunyaTabelLengkap(t *testing.T) {
	fields := []SessionField{
		FieldStudent, FieldCounselor, FieldDate, FieldDuration,
		FieldType, FieldNotes, FieldOutcome, FieldNextSteps,
	}
	for _, role := range AllRoles {
		caps, ok := SessionCapabilities[role]
		if !ok {
			t.Errorf("role %s tidak punya tabel kapabilitas", role)
			continue
		}
		for _, f := range fields {
			if _, ok := caps[f]; !ok {
				t.Errorf("role %s tidak punya entri field %s", role, f)
			}
		}
	}
}
