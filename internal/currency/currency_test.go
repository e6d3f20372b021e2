package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		style  string
		want   string
	}{
		{"dot grouping", 1234.56, "USD", "dot", "$1,234.56"},
		{"comma grouping", 1234.56, "USD", "comma", "$1.234,56"},
		{"small amount", 50, "USD", "dot", "$50.00"},
		{"million", 1234567.89, "USD", "dot", "$1,234,567.89"},
		{"euro", 99.95, "EUR", "dot", "€99.95"},
		{"pound", 10, "GBP", "dot", "£10.00"},
		{"rupiah comma", 1500000, "IDR", "comma", "Rp1.500.000,00"},
		{"yen has no decimals", 1234.56, "JPY", "dot", "¥1,235"},
		{"negative", -50.25, "USD", "dot", "-$50.25"},
		{"zero", 0, "USD", "dot", "$0.00"},
		{"unknown code falls back", 12.5, "ZZZ", "dot", "$12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount, tt.code, tt.style); got != tt.want {
				t.Fatalf("Format(%v, %q, %q) = %q, want %q", tt.amount, tt.code, tt.style, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in, sep, want string
	}{
		{"1", ",", "1"},
		{"123", ",", "123"},
		{"1234", ",", "1,234"},
		{"123456", ",", "123,456"},
		{"1234567", ".", "1.234.567"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in, tt.sep); got != tt.want {
			t.Fatalf("groupThousands(%q, %q) = %q, want %q", tt.in, tt.sep, got, tt.want)
		}
	}
}
