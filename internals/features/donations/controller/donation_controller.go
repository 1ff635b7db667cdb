// 📁 controller/donation_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"givehope_backend/internals/features/donations/dto"
	"givehope_backend/internals/features/donations/model"
	helper "givehope_backend/internals/helpers"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{
		DB:       db,
		Validate: validator.New(),
	}
}

// 🟢 CREATE DONATION: simpan record donasi baru dengan status pending.
// Pembayaran menyusul lewat /api/payments (create-order → verify).
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.Amount.IsPositive() {
		return helper.Error(c, fiber.StatusBadRequest, "Amount must be a positive number")
	}

	donation := body.ToModel()

	// 📂 Simpan donasi ke database
	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Printf("[ERROR] gagal menyimpan donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save donation")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"donation": donation,
		"message":  "Donation record created successfully",
	})
}

// 🟢 GET DONATIONS BY EMAIL: riwayat donasi milik satu email, terbaru dulu.
func (ctrl *DonationController) GetDonationsByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Email parameter required")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Donation{}).
		Where("donation_email = ?", email).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] gagal menghitung donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	var donations []model.Donation
	if err := ctrl.DB.
		Where("donation_email = ?", email).
		Order("created_at desc").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&donations).Error; err != nil {
		log.Printf("[ERROR] gagal mengambil donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return c.JSON(fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildPagination(total, p, len(donations)),
	})
}

// 🟢 GET DONATION BY ID
func (ctrl *DonationController) GetDonationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid donation id")
	}

	var donation model.Donation
	if err := ctrl.DB.Where("donation_id = ?", id).First(&donation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		log.Printf("[ERROR] gagal mengambil donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donation")
	}

	return c.JSON(fiber.Map{"donation": donation})
}

// 🟢 GET ALL DONATIONS: seluruh data donasi (admin), terbaru dulu.
func (ctrl *DonationController) GetAllDonations(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Donation{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] gagal menghitung donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	var donations []model.Donation
	if err := ctrl.DB.
		Order("created_at desc").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&donations).Error; err != nil {
		log.Printf("[ERROR] gagal mengambil donasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	return c.JSON(fiber.Map{
		"donations":  donations,
		"pagination": helper.BuildPagination(total, p, len(donations)),
	})
}

type purposeTotal struct {
	Purpose string          `gorm:"column:donation_purpose" json:"purpose"`
	Count   int64           `gorm:"column:count" json:"count"`
	Amount  decimal.Decimal `gorm:"column:amount" json:"amount"`
}

// 🟢 GET DONATION SUMMARY: angka dampak untuk dashboard admin/landing page.
func (ctrl *DonationController) GetDonationSummary(c *fiber.Ctx) error {
	var total, completed int64
	if err := ctrl.DB.Model(&model.Donation{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] summary count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build summary")
	}
	if err := ctrl.DB.Model(&model.Donation{}).
		Where("donation_payment_status = ?", model.StatusCompleted).
		Count(&completed).Error; err != nil {
		log.Printf("[ERROR] summary completed count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build summary")
	}

	var completedAmount decimal.Decimal
	row := ctrl.DB.Model(&model.Donation{}).
		Where("donation_payment_status = ?", model.StatusCompleted).
		Select("COALESCE(SUM(donation_amount), 0)").
		Row()
	if err := row.Scan(&completedAmount); err != nil {
		log.Printf("[ERROR] summary amount: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build summary")
	}

	var byPurpose []purposeTotal
	if err := ctrl.DB.Model(&model.Donation{}).
		Select("donation_purpose, COUNT(*) AS count, COALESCE(SUM(donation_amount), 0) AS amount").
		Where("donation_payment_status = ?", model.StatusCompleted).
		Group("donation_purpose").
		Scan(&byPurpose).Error; err != nil {
		log.Printf("[ERROR] summary by purpose: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build summary")
	}

	return c.JSON(fiber.Map{
		"total_donations":     total,
		"completed_donations": completed,
		"completed_amount":    completedAmount,
		"by_purpose":          byPurpose,
	})
}
