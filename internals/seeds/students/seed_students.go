package students

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"konselingku_backend/internals/features/school/students/model"
)

type StudentSeed struct {
	NIS            string  `json:"nis"`
	Name           string  `json:"name"`
	Email          *string `json:"email"`
	Tingkat        string  `json:"tingkat"`
	Kelas          string  `json:"kelas"`
	AcademicStatus string  `json:"academic_status"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file siswa:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.Where("student_nis = ?", data.NIS).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Siswa dengan NIS '%s' sudah ada, dilewati.", data.NIS)
			continue
		}

		status := data.AcademicStatus
		if status == "" {
			status = "good"
		}

		newStudent := model.StudentModel{
			StudentNIS:            data.NIS,
			StudentName:           data.Name,
			StudentEmail:          data.Email,
			StudentTingkat:        data.Tingkat,
			StudentKelas:          data.Kelas,
			StudentAcademicStatus: status,
		}

		if err := db.Create(&newStudent).Error; err != nil {
			log.Printf("❌ Gagal insert siswa '%s': %v", data.NIS, err)
		} else {
			log.Printf("✅ Berhasil insert siswa '%s'", data.NIS)
		}
	}
}
