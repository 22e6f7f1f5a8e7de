package records

import "testing"

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		routing string
		want    int
	}{
		{"06100010", 4},
		{"07640125", 1},
		{"99999998", 9},
		{"00000000", 0},
		{"12345678", 0},
	}
	for _, tt := range tests {
		if got := CheckDigit(tt.routing); got != tt.want {
			t.Errorf("CheckDigit(%q) = %d, want %d", tt.routing, got, tt.want)
		}
	}
}
