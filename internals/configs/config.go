package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	Razorpay  RazorpayConfig
)

// RazorpayConfig dibangun sekali saat bootstrap dan di-inject ke controller,
// supaya handler tidak baca ENV sendiri-sendiri.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

func (c RazorpayConfig) Configured() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	Razorpay = RazorpayConfig{
		KeyID:     GetEnv("RAZORPAY_KEY_ID"),
		KeySecret: GetEnv("RAZORPAY_KEY_SECRET"),
	}

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if !Razorpay.Configured() {
		log.Println("❌ RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET belum diset! Endpoint pembayaran akan menolak request.")
	} else {
		log.Println("✅ Kredensial Razorpay berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
