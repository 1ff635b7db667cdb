package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest adalah body POST /api/payments/create-order.
type CreateOrderRequest struct {
	// Amount divalidasi terpisah di controller (desimal positif).
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency" validate:"omitempty,len=3,uppercase"`
	DonationID string          `json:"donationId" validate:"required,uuid"`
}

// VerifyPaymentRequest adalah body POST /api/payments/verify.
// Nama field mengikuti payload callback checkout Razorpay.
type VerifyPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	DonationID        string `json:"donation_id" validate:"required,uuid"`
}

// OrderResponse adalah isi field "order" pada response create-order.
// Key = key id publik, tidak pernah secret.
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}
