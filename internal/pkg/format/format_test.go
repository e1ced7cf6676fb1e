package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"Thousands grouped", 1000, "₦1,000.00"},
		{"Zero", 0, "₦0.00"},
		{"Cents kept", 25.5, "₦25.50"},
		{"Millions", 1234567.89, "₦1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestAccountNumber(t *testing.T) {
	assert.Equal(t, "9012345678", AccountNumber("09012345678"))
	// Numbers without the leading zero pass through untouched.
	assert.Equal(t, "9012345678", AccountNumber("9012345678"))
}
