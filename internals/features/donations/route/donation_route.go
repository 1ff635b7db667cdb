package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "givehope_backend/internals/features/donations/controller"
)

// DonationRoutes defines the public routes for donations
func DonationRoutes(api fiber.Router, db *gorm.DB) {
	donationCtrl := donationController.NewDonationController(db)

	api.Post("/", donationCtrl.CreateDonation)       // Create donation (pending)
	api.Get("/", donationCtrl.GetDonationsByEmail)   // Donations by email (?email=)
	api.Get("/:id", donationCtrl.GetDonationByID)    // Single donation
}

// DonationAdminRoutes defines the admin-only routes
func DonationAdminRoutes(api fiber.Router, db *gorm.DB) {
	donationCtrl := donationController.NewDonationController(db)

	api.Get("/", donationCtrl.GetAllDonations)          // All donations
	api.Get("/summary", donationCtrl.GetDonationSummary) // Impact numbers
}
