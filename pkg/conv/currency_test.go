package conv

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{6000, "₹6,000"},
		{15000, "₹15,000"},
		{50000.4, "₹50,000"},
		{1234567, "₹1,234,567"},
		{100000000, "₹100,000,000"},
		{-5000, "-₹5,000"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.in); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
