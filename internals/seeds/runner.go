package seeds

import (
	donations "givehope_backend/internals/seeds/donations"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data contoh untuk lingkungan dev/staging.
// Dipanggil dari main kalau RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	donations.SeedDonationsFromJSON(db, "internals/seeds/donations/data_donations.json")
}
