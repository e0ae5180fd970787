package compare

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v      float64
		digits int
		want   string
	}{
		{0, 0, "0"},
		{100, 0, "100"},
		{1000, 0, "1,000"},
		{1234567.891, 0, "1,234,568"},
		{-94680, 0, "-94,680"},
		{44.5678, 1, "44.6"},
		{-2.5, 1, "-2.5"},
		{6.144, 2, "6.14"},
		{999.95, 1, "1,000.0"},
	}
	for _, c := range cases {
		if got := formatNumber(c.v, c.digits); got != c.want {
			t.Errorf("formatNumber(%v, %d) = %q, want %q", c.v, c.digits, got, c.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	cases := []struct {
		v      float64
		digits int
		want   string
	}{
		{20, 0, "+20"},
		{0, 0, "+0"},
		{-2500, 0, "-2,500"},
		{0.25, 2, "+0.25"},
	}
	for _, c := range cases {
		if got := formatSigned(c.v, c.digits); got != c.want {
			t.Errorf("formatSigned(%v, %d) = %q, want %q", c.v, c.digits, got, c.want)
		}
	}
}
