package services

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0.00"},
		{"under thousand", 999, "₹999.00"},
		{"thousands", 45000, "₹45,000.00"},
		{"lakh", 120750, "₹1,20,750.00"},
		{"crore", 12345678.9, "₹1,23,45,678.90"},
		{"negative", -45000, "-₹45,000.00"},
		{"decimal", 2.5, "₹2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatINRWhole(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0"},
		{"thousands", 60000, "₹60,000"},
		{"lakh", 105000, "₹1,05,000"},
		{"rounds decimals", 120750.4, "₹1,20,750"},
		{"negative", -500, "-₹500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINRWhole(tt.amount); got != tt.want {
				t.Errorf("FormatINRWhole(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "1,23,456"},
		{"12345678", "1,23,45,678"},
	}
	for _, tt := range tests {
		if got := groupIndian(tt.in); got != tt.want {
			t.Errorf("groupIndian(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
