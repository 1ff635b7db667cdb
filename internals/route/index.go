// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"givehope_backend/internals/configs"
	donationRoute "givehope_backend/internals/features/donations/route"
	paymentRoute "givehope_backend/internals/features/payments/route"
	authMiddleware "givehope_backend/internals/middlewares/auth"
	"givehope_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, rzp configs.RazorpayConfig) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up DonationRoutes...")
	api := app.Group("/api")
	donationRoute.DonationRoutes(api.Group("/donations"), db)

	// Pembayaran dapat limiter lebih ketat
	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(
		api.Group("/payments", middlewares.PaymentRateLimiter()),
		db, rzp,
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + role)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles("admin", "owner"),
	)
	donationRoute.DonationAdminRoutes(admin.Group("/donations"), db)
}
