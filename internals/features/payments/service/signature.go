package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// ExpectedSignature menghitung HMAC-SHA256 atas "<order_id>|<payment_id>"
// dengan key secret, lowercase hex. Ini skema callback checkout Razorpay.
func ExpectedSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature membandingkan signature kiriman klien dengan hasil
// hitung sendiri. Constant-time supaya tidak bisa dipakai timing probe.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := ExpectedSignature(secret, orderID, paymentID)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
