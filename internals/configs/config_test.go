package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GIVEHOPE_TEST_KEY", "isi")

	assert.Equal(t, "isi", GetEnv("GIVEHOPE_TEST_KEY"))
	assert.Equal(t, "", GetEnv("GIVEHOPE_TEST_MISSING"))
	assert.Equal(t, "fallback", GetEnv("GIVEHOPE_TEST_MISSING", "fallback"))
}

func TestRazorpayConfigConfigured(t *testing.T) {
	assert.False(t, RazorpayConfig{}.Configured())
	assert.False(t, RazorpayConfig{KeyID: "rzp_test_key"}.Configured())
	assert.False(t, RazorpayConfig{KeySecret: "s"}.Configured())
	assert.True(t, RazorpayConfig{KeyID: "rzp_test_key", KeySecret: "s"}.Configured())
}
