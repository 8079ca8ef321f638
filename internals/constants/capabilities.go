package constants

// SessionField adalah field pada form sesi konseling yang visibilitas/
// editability-nya tergantung role pemanggil.
type SessionField string

const (
	FieldStudent   SessionField = "student_id"
	FieldCounselor SessionField = "counselor_id"
	FieldDate      SessionField = "date"
	FieldDuration  SessionField = "duration"
	FieldType      SessionField = "type"
	FieldNotes     SessionField = "notes"
	FieldOutcome   SessionField = "outcome"
	FieldNextSteps SessionField = "next_steps"
)

type FieldCapability struct {
	Visible  bool
	Editable bool
}

// SessionCapabilities: tabel kapabilitas eksplisit per role, menggantikan
// conditional tersebar di form lama. Student memakai id-nya sendiri (selector
// siswa disembunyikan); counselor memakai id-nya sendiri (selector counselor
// disembunyikan). Outcome & next steps khusus counselor.
var SessionCapabilities = map[string]map[SessionField]FieldCapability{
	RoleAdmin: {
		FieldStudent:   {Visible: true, Editable: true},
		FieldCounselor: {Visible: true, Editable: true},
		FieldDate:      {Visible: true, Editable: true},
		FieldDuration:  {Visible: true, Editable: true},
		FieldType:      {Visible: true, Editable: true},
		FieldNotes:     {Visible: true, Editable: true},
		FieldOutcome:   {Visible: true, Editable: false},
		FieldNextSteps: {Visible: true, Editable: false},
	},
	RoleStaff: {
		FieldStudent:   {Visible: true, Editable: true},
		FieldCounselor: {Visible: true, Editable: true},
		FieldDate:      {Visible: true, Editable: true},
		FieldDuration:  {Visible: true, Editable: true},
		FieldType:      {Visible: true, Editable: true},
		FieldNotes:     {Visible: true, Editable: true},
		FieldOutcome:   {Visible: true, Editable: false},
		FieldNextSteps: {Visible: true, Editable: false},
	},
	RoleCounselor: {
		FieldStudent:   {Visible: true, Editable: true},
		FieldCounselor: {Visible: false, Editable: false}, // terkunci ke dirinya sendiri
		FieldDate:      {Visible: true, Editable: true},
		FieldDuration:  {Visible: true, Editable: true},
		FieldType:      {Visible: true, Editable: true},
		FieldNotes:     {Visible: true, Editable: true},
		FieldOutcome:   {Visible: true, Editable: true},
		FieldNextSteps: {Visible: true, Editable: true},
	},
	RoleStudent: {
		FieldStudent:   {Visible: false, Editable: false}, // terkunci ke dirinya sendiri
		FieldCounselor: {Visible: true, Editable: true},
		FieldDate:      {Visible: true, Editable: true},
		FieldDuration:  {Visible: true, Editable: true},
		FieldType:      {Visible: true, Editable: true},
		FieldNotes:     {Visible: true, Editable: true},
		FieldOutcome:   {Visible: false, Editable: false},
		FieldNextSteps: {Visible: false, Editable: false},
	},
}

// CanEditField cek apakah role boleh mengubah field tertentu.
func CanEditField(role string, f SessionField) bool {
	caps, ok := SessionCapabilities[role]
	if !ok {
		return false
	}
	return caps[f].Editable
}

// CanSeeField cek apakah role boleh melihat field tertentu.
func CanSeeField(role string, f SessionField) bool {
	caps, ok := SessionCapabilities[role]
	if !ok {
		return false
	}
	return caps[f].Visible
}
