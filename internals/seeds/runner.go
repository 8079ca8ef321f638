package seeds

import (
	"gorm.io/gorm"

	"konselingku_backend/internals/seeds/counselors"
	"konselingku_backend/internals/seeds/students"
	"konselingku_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data awal. Semua seeder idempotent: baris yang
// sudah ada dilewati, jadi aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	counselors.SeedCounselorsFromJSON(db, "internals/seeds/counselors/data_counselors.json")
	students.SeedStudentsFromJSON(db, "internals/seeds/students/data_students.json")
}
