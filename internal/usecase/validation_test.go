package usecase

import "testing"

func TestValidateBuyOrder(t *testing.T) {
	cases := []struct {
		name     string
		buyOrder string
		want     bool
	}{
		{"simple", "ORDER-123", true},
		{"underscore and digits", "ord_42", true},
		{"max length", "abcdefghijklmnopqrstuvwxyz", true},
		{"empty", "", false},
		{"too long", "abcdefghijklmnopqrstuvwxyz0", false},
		{"space", "ORDER 123", false},
		{"unicode", "ордер-1", false},
		{"punctuation", "ORDER#1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateBuyOrder(tc.buyOrder); got != tc.want {
				t.Fatalf("ValidateBuyOrder(%q) = %v, want %v", tc.buyOrder, got, tc.want)
			}
		})
	}
}
