package dto

import (
	"github.com/shopspring/decimal"

	"givehope_backend/internals/features/donations/model"
)

// CreateDonationRequest adalah body POST /api/donations.
// Nama field JSON mengikuti form di landing page.
type CreateDonationRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"` // Nama pendonor
	Email    string `json:"email" validate:"required,email"`            // Email pendonor
	Phone    string `json:"phone" validate:"omitempty,max=20"`

	// Amount divalidasi terpisah di controller (harus desimal positif;
	// boleh dikirim sebagai string maupun number).
	Amount decimal.Decimal `json:"amount"`

	DonationType string `json:"donationType" validate:"required,oneof=one-time monthly yearly"`
	Purpose      string `json:"purpose" validate:"required,oneof=education healthcare food shelter general"`

	Message       string `json:"message" validate:"omitempty,max=1000"` // Pesan/ucapan
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,max=50"`
}

// ToModel membentuk row donasi baru (status selalu pending).
func (r CreateDonationRequest) ToModel() model.Donation {
	method := r.PaymentMethod
	if method == "" {
		method = "razorpay"
	}
	return model.Donation{
		DonationName:          r.FullName,
		DonationEmail:         r.Email,
		DonationPhone:         r.Phone,
		DonationAmount:        r.Amount,
		DonationType:          r.DonationType,
		DonationPurpose:       r.Purpose,
		DonationMessage:       r.Message,
		DonationPaymentMethod: method,
		DonationPaymentStatus: model.StatusPending,
	}
}
