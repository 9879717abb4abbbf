// ABOUTME: Tests for COLORFGBG background detection
// ABOUTME: Covers two- and three-part values and fallbacks

package termfix

import "testing"

func TestDark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"15;0", true},
		{"0;15", false},
		{"0;7", false},
		{"12;default;4", true},
		{"0;default;11", false},
		{"garbage", true},
		{"0;232", true},
	}
	for _, tt := range tests {
		if got := Dark(tt.in); got != tt.want {
			t.Errorf("Dark(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
