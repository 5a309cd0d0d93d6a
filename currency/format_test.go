package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		amount    float64
		code, sep string
		want      string
	}{
		{1234.56, "EUR", ".", "€1,234.56"},
		{1234.56, "USD", ".", "$1,234.56"},
		{1234.56, "EUR", ",", "€1.234,56"},
		{0, "EUR", ".", "€0.00"},
		{-1234.56, "EUR", ".", "-€1,234.56"},
		{1000000, "EUR", ".", "€1,000,000.00"},
		{1234.567, "EUR", ".", "€1,234.57"},
		{1234.56, "AUD", ".", "A$1,234.56"},
		{1234.4, "JPY", ".", "¥1,234"},
		{0.4, "XYZ", ".", "XYZ0.40"},
	}
	for _, tt := range tests {
		if got := Format(tt.amount, tt.code, tt.sep); got != tt.want {
			t.Errorf("Format(%v, %q, %q) = %q, want %q", tt.amount, tt.code, tt.sep, got, tt.want)
		}
	}
}

func TestFraction(t *testing.T) {
	for code, want := range map[string]int{"EUR": 2, "USD": 2, "JPY": 0, "XYZ": 2, "": 2} {
		if got := Fraction(code); got != want {
			t.Errorf("Fraction(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestSymbol(t *testing.T) {
	want := map[string]string{
		"EUR": "€", "USD": "$", "GBP": "£", "CHF": "CHF", "JPY": "¥", "AUD": "A$", "CAD": "C$",
	}
	for code, symbol := range want {
		if got := Symbol(code); got != symbol {
			t.Errorf("Symbol(%q) = %q, want %q", code, got, symbol)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"EUR", "USD", "GBP", "CHF", "JPY", "AUD", "CAD"} {
		if !IsSupported(code) {
			t.Errorf("IsSupported(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"XYZ", "", "eur"} {
		if IsSupported(code) {
			t.Errorf("IsSupported(%q) = true, want false", code)
		}
	}
}
