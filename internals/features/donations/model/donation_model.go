package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationName  string `gorm:"column:donation_name;type:varchar(100);not null" json:"donation_name"`
	DonationEmail string `gorm:"column:donation_email;type:varchar(255);not null;index" json:"donation_email"`
	DonationPhone string `gorm:"column:donation_phone;type:varchar(20)" json:"donation_phone,omitempty"`

	DonationAmount  decimal.Decimal `gorm:"column:donation_amount;type:numeric(12,2);not null;check:donation_amount > 0" json:"donation_amount"`
	DonationType    string          `gorm:"column:donation_type;type:varchar(20);not null" json:"donation_type"`
	DonationPurpose string          `gorm:"column:donation_purpose;type:varchar(30);not null" json:"donation_purpose"`
	DonationMessage string          `gorm:"column:donation_message;type:text" json:"donation_message"`

	DonationPaymentMethod string `gorm:"column:donation_payment_method;type:varchar(50);default:'razorpay'" json:"donation_payment_method"`
	DonationPaymentStatus string `gorm:"column:donation_payment_status;type:varchar(20);default:'pending'" json:"donation_payment_status"`

	// Terisi saat create-order / verify
	DonationOrderID   string            `gorm:"column:donation_order_id;type:varchar(100);index" json:"donation_order_id,omitempty"`
	DonationPaymentID string            `gorm:"column:donation_payment_id;type:varchar(100)" json:"donation_payment_id,omitempty"`
	DonationReceipt   string            `gorm:"column:donation_receipt;type:varchar(40)" json:"donation_receipt,omitempty"`
	DonationMeta      datatypes.JSONMap `gorm:"column:donation_meta;type:jsonb" json:"donation_meta,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donation) TableName() string {
	return "donations"
}
