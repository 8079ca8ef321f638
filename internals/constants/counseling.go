package constants

import "time"

// Jenis sesi konseling
const (
	SessionTypeAcademic     = "academic"
	SessionTypeBehavioral   = "behavioral"
	SessionTypeMentalHealth = "mental-health"
	SessionTypeCareer       = "career"
	SessionTypeSocial       = "social"
)

var SessionTypes = []string{
	SessionTypeAcademic,
	SessionTypeBehavioral,
	SessionTypeMentalHealth,
	SessionTypeCareer,
	SessionTypeSocial,
}

// Hasil sesi
const (
	OutcomePositive = "positive"
	OutcomeNeutral  = "neutral"
	OutcomeNegative = "negative"
)

// Status approval
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Status akademik siswa
const (
	AcademicGood     = "good"
	AcademicWarning  = "warning"
	AcademicCritical = "critical"
)

// Kategori catatan perilaku
const (
	BehaviorViolation   = "violation"
	BehaviorAchievement = "achievement"
)

// Tingkat risiko hasil asesmen
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// Jam operasional booking: sesi baru hanya boleh mulai 07:00–15:00,
// kalender harian merender jendela 07:00–17:00.
const (
	BookingStartHour  = 7
	BookingEndHour    = 15
	CalendarStartHour = 7
	CalendarEndHour   = 17
)

// Hari libur mingguan (sekolah 6 hari, Minggu libur)
const ClosedWeekday = time.Weekday(time.Sunday)
