package foodlog

import "testing"

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "135", 135},
		{"grams suffix", "10g", 10},
		{"decimal with suffix", "12.5g", 12.5},
		{"number buried in text", "about 12.5g protein", 12.5},
		{"no number", "abc", 0},
		{"empty string", "", 0},
		{"number after letters", "g10", 10},
		{"first of several numbers wins", "10g of 2 items", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractAmount(tc.raw)
			if got != tc.want {
				t.Fatalf("ExtractAmount(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
