package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		cur  string
		sep  string
		want float64
	}{
		{"1234.56", "EUR", ".", 1234.56},
		{"1,234.56", "EUR", ".", 1234.56},
		{"€1,234.56", "EUR", ".", 1234.56},
		{"1.234,56", "EUR", ",", 1234.56},
		{"€ 1.234,56", "EUR", ",", 1234.56},
		{"-$12.5", "USD", ".", -12.5},
		{"100 EUR", "EUR", ".", 100},
		{"0", "JPY", ".", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in, tt.cur, tt.sep)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Float(), delta)
			assert.Equal(t, tt.cur, got.Currency())
		})
	}

	_, err := ParseAmount("twelve", "EUR", ".")
	assert.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "€1,234.56", M(1234.56, "EUR").String())
	assert.Equal(t, "€1.234,56", M(1234.56, "EUR").Format(","))
	assert.Equal(t, "+€1,200.00", M(1200.0, "EUR").SignedString("."))
	assert.Equal(t, "-€3.50", M(-3.5, "EUR").SignedString("."))
	assert.Equal(t, "-", M(0.004, "EUR").SignedString("."))
	assert.Equal(t, "+XYZ0.40", M(0.40, "XYZ").SignedString("."))
	assert.Equal(t, "-", M(0.4, "JPY").SignedString("."))
	assert.True(t, M(1.004, "EUR").Round().Equal(M(1, "EUR")))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.50%", Percent(12.5).String())
	assert.Equal(t, "+1.25%", Percent(1.25).SignedString())
	assert.Equal(t, "-", Percent(-0.001).SignedString())
}
