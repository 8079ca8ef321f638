package counselors

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"konselingku_backend/internals/features/school/counselors/model"
)

type CounselorSeed struct {
	NIP            string  `json:"nip"`
	Name           string  `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
}

func SeedCounselorsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file konselor:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []CounselorSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.CounselorModel
		if err := db.Where("counselor_nip = ?", data.NIP).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Konselor dengan NIP '%s' sudah ada, dilewati.", data.NIP)
			continue
		}

		newCounselor := model.CounselorModel{
			CounselorNIP:            data.NIP,
			CounselorName:           data.Name,
			CounselorEmail:          data.Email,
			CounselorPhone:          data.Phone,
			CounselorSpecialization: data.Specialization,
			CounselorIsActive:       true,
		}

		if err := db.Create(&newCounselor).Error; err != nil {
			log.Printf("❌ Gagal insert konselor '%s': %v", data.NIP, err)
		} else {
			log.Printf("✅ Berhasil insert konselor '%s'", data.NIP)
		}
	}
}
