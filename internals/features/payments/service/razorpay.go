package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"

	"givehope_backend/internals/configs"
)

/* =========================================================
   Razorpay Client
========================================================= */

// GatewayOrder adalah echo minimal dari order yang dibuat gateway.
// Hanya hidup selama round-trip ke klien; anchor permanennya tetap
// row donasi.
type GatewayOrder struct {
	ID       string
	Amount   int64 // paise
	Currency string
	Receipt  string
}

// OrderCreator diimplementasikan oleh RazorpayGateway (dan stub di test).
type OrderCreator interface {
	CreateOrder(amountPaise int64, currency, receipt, donationID string) (*GatewayOrder, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway membuat gateway client dari config eksplisit.
// Basic-auth key id/secret ditangani oleh SDK.
func NewRazorpayGateway(cfg configs.RazorpayConfig) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret)}
}

func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt, donationID string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
		"notes": map[string]interface{}{
			// donation id lengkap disimpan di notes untuk audit
			"donation_id": donationID,
		},
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, errors.New("razorpay order create: empty order id in response")
	}

	out := &GatewayOrder{ID: id, Amount: amountPaise, Currency: currency, Receipt: receipt}
	if amt, ok := body["amount"].(float64); ok {
		out.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		out.Currency = cur
	}
	return out, nil
}

/* =========================================================
   Receipt & amount helpers
========================================================= */

const (
	receiptPrefix   = "don"
	DefaultCurrency = "INR"
)

// BuildReceipt menurunkan receipt token dari donation id + waktu:
// don_<segmen pertama uuid>_<8 digit terakhir unix-millis>.
// Format: don_12345678_87654321 (24 char, batas Razorpay 40).
func BuildReceipt(donationID string, at time.Time) string {
	short := donationID
	if i := strings.IndexByte(donationID, '-'); i > 0 {
		short = donationID[:i]
	}
	ms := fmt.Sprintf("%d", at.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return fmt.Sprintf("%s_%s_%s", receiptPrefix, short, ms)
}

// ToPaise mengubah rupee desimal ke satuan minor gateway (×100,
// round half away from zero). Pakai decimal supaya 12.345 tidak
// meleset jadi 1234 karena drift float.
func ToPaise(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
