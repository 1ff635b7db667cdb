// 📁 controller/payment_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"givehope_backend/internals/configs"
	donationModel "givehope_backend/internals/features/donations/model"
	"givehope_backend/internals/features/payments/dto"
	paymentService "givehope_backend/internals/features/payments/service"
	helper "givehope_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Cfg      configs.RazorpayConfig
	Gateway  paymentService.OrderCreator
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, cfg configs.RazorpayConfig) *PaymentController {
	return &PaymentController{
		DB:       db,
		Cfg:      cfg,
		Gateway:  paymentService.NewRazorpayGateway(cfg),
		Validate: validator.New(),
	}
}

// 🟢 CREATE ORDER: buat order Razorpay untuk satu donasi pending.
// Klien memakai order id + key publik untuk membuka checkout.
func (ctrl *PaymentController) CreateOrder(c *fiber.Ctx) error {
	var body dto.CreateOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.Amount.IsPositive() {
		return helper.Error(c, fiber.StatusBadRequest, "Amount and donation ID are required")
	}

	// Salah konfigurasi server = 500, dicek sebelum sentuh store/gateway
	if !ctrl.Cfg.Configured() {
		return helper.Error(c, fiber.StatusInternalServerError, "Razorpay credentials not configured")
	}

	currency := body.Currency
	if currency == "" {
		currency = paymentService.DefaultCurrency
	}

	receipt := paymentService.BuildReceipt(body.DonationID, time.Now())
	amountPaise := paymentService.ToPaise(body.Amount)

	order, err := ctrl.Gateway.CreateOrder(amountPaise, currency, receipt, body.DonationID)
	if err != nil {
		// Body error gateway hanya masuk log, tidak pernah bocor ke klien
		log.Printf("[ERROR] razorpay order gagal: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment order")
	}

	// Simpan order id + receipt ke row donasi (best effort; order sudah
	// terlanjur dibuat di gateway, klien tetap harus dapat responsnya)
	if err := ctrl.DB.Model(&donationModel.Donation{}).
		Where("donation_id = ?", body.DonationID).
		Updates(map[string]interface{}{
			"donation_order_id": order.ID,
			"donation_receipt":  order.Receipt,
			"donation_meta": datatypes.JSONMap{
				"gateway":      "razorpay",
				"order_amount": order.Amount,
				"currency":     order.Currency,
			},
		}).Error; err != nil {
		log.Printf("[WARN] gagal menyimpan order id ke donasi %s: %v", body.DonationID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order": dto.OrderResponse{
			ID:       order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Key:      ctrl.Cfg.KeyID,
		},
	})
}

// 🟢 VERIFY PAYMENT: cek signature callback checkout, lalu tandai donasi
// completed. Signature salah = 400 dan row TIDAK disentuh.
func (ctrl *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	var body dto.VerifyPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	if ctrl.Cfg.KeySecret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Razorpay secret not configured")
	}

	if !paymentService.VerifySignature(ctrl.Cfg.KeySecret, body.RazorpayOrderID, body.RazorpayPaymentID, body.RazorpaySignature) {
		log.Printf("[WARN] signature mismatch untuk donasi %s (order %s)", body.DonationID, body.RazorpayOrderID)
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payment signature")
	}

	// Guarded update: hanya row pending/completed yang boleh transisi.
	// Replay dengan payload identik tetap sukses (nilai idempoten);
	// row yang sudah failed tidak bisa dipaksa completed.
	res := ctrl.DB.Model(&donationModel.Donation{}).
		Where("donation_id = ? AND donation_payment_status IN ?",
			body.DonationID,
			[]string{donationModel.StatusPending, donationModel.StatusCompleted}).
		Updates(map[string]interface{}{
			"donation_payment_status": donationModel.StatusCompleted,
			"donation_payment_id":     body.RazorpayPaymentID,
			"donation_order_id":       body.RazorpayOrderID,
			"updated_at":              time.Now(),
		})
	if res.Error != nil {
		log.Printf("[ERROR] gagal update donasi %s: %v", body.DonationID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation record")
	}
	if res.RowsAffected == 0 {
		log.Printf("[ERROR] verify tidak menemukan donasi %s yang bisa ditransisi", body.DonationID)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation record")
	}

	var donation donationModel.Donation
	if err := ctrl.DB.Where("donation_id = ?", body.DonationID).First(&donation).Error; err != nil {
		log.Printf("[ERROR] gagal membaca ulang donasi %s: %v", body.DonationID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update donation record")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Payment verified successfully",
		"donation": donation,
	})
}
