package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"19.99", 1999},
		{"34.99", 3499},
		{"69.99", 6999},
		{"70", 7000},
		{"0.50", 50},
		{"0.5", 50},
		{"100.00", 10000},
	}

	for _, tt := range tests {
		got, err := AmountToCents(tt.amount)
		require.NoError(t, err, tt.amount)
		assert.Equal(t, tt.want, got, tt.amount)
	}
}

func TestAmountToCentsInvalid(t *testing.T) {
	for _, amount := range []string{"", "abc", "19.999", "-5.00", "12.x"} {
		_, err := AmountToCents(amount)
		assert.Error(t, err, amount)
	}
}
