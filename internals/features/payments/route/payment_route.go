package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"givehope_backend/internals/configs"
	paymentController "givehope_backend/internals/features/payments/controller"
)

// PaymentRoutes defines the order-creation + verification handshake routes
func PaymentRoutes(api fiber.Router, db *gorm.DB, cfg configs.RazorpayConfig) {
	paymentCtrl := paymentController.NewPaymentController(db, cfg)

	api.Post("/create-order", paymentCtrl.CreateOrder) // Razorpay order untuk donasi
	api.Post("/verify", paymentCtrl.VerifyPayment)     // Verifikasi signature checkout
}
