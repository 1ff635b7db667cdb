package donations

import (
	"encoding/json"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"givehope_backend/internals/features/donations/model"
)

// Struktur sesuai dengan kolom tabel donations
type DonationSeed struct {
	DonationName    string `json:"donation_name"`
	DonationEmail   string `json:"donation_email"`
	DonationPhone   string `json:"donation_phone"`
	DonationAmount  string `json:"donation_amount"`
	DonationType    string `json:"donation_type"`
	DonationPurpose string `json:"donation_purpose"`
	DonationMessage string `json:"donation_message"`
	DonationStatus  string `json:"donation_payment_status"`
}

func SeedDonationsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seedData []DonationSeed
	if err := json.Unmarshal(file, &seedData); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seedData {
		amount, err := decimal.NewFromString(s.DonationAmount)
		if err != nil || !amount.IsPositive() {
			log.Printf("⚠️ Lewati seed %s: amount tidak valid (%s)", s.DonationEmail, s.DonationAmount)
			continue
		}

		status := s.DonationStatus
		if status == "" {
			status = model.StatusPending
		}

		donation := model.Donation{
			DonationName:          s.DonationName,
			DonationEmail:         s.DonationEmail,
			DonationPhone:         s.DonationPhone,
			DonationAmount:        amount,
			DonationType:          s.DonationType,
			DonationPurpose:       s.DonationPurpose,
			DonationMessage:       s.DonationMessage,
			DonationPaymentMethod: "razorpay",
			DonationPaymentStatus: status,
		}

		// Idempoten: jangan duplikat kalau email+amount sudah ada
		var count int64
		db.Model(&model.Donation{}).
			Where("donation_email = ? AND donation_amount = ?", s.DonationEmail, amount).
			Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Create(&donation).Error; err != nil {
			log.Printf("❌ Gagal seed donasi %s: %v", s.DonationEmail, err)
		}
	}

	log.Printf("✅ Seed donasi selesai (%d kandidat).", len(seedData))
}
