package extraction

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Rp. 1.234.567,89", "1234567.89"},
		{"896.462.640.-", "896462640"},
		{"Rp. 20.113.200,", "20113200"},
		{"Rp 53.000", "53000"},
		{"Rp. 0.,", "0"},
		{"25.000.000", "25000000"},
		{"1,234,567", "1234567"},
		{"100", "100"},
		{"0", "0"},
		{"garbage", "0"},
		{"", "0"},
		{"Rp", "0"},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		want, _ := decimal.NewFromString(tc.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestLooksLikeAmount(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Rp. 20.113.200,", true},
		{"Rp 0", true},
		{"896.462.640.-", true},
		{"20113200", true},
		{"137", false}, // short bare number, likely a count or noise
		{"Biaya Instalasi", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := LooksLikeAmount(tc.in); got != tc.want {
			t.Errorf("LooksLikeAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAmountsIn(t *testing.T) {
	amts := AmountsIn("Biaya Instalasi Rp. 500.000 Biaya Langganan Rp. 20.113.200,")
	if len(amts) != 2 {
		t.Fatalf("expected 2 amounts, got %d", len(amts))
	}
	if !amts[0].Equal(decimal.NewFromInt(500000)) {
		t.Errorf("first amount = %s, want 500000", amts[0])
	}
	if !amts[1].Equal(decimal.NewFromInt(20113200)) {
		t.Errorf("second amount = %s, want 20113200", amts[1])
	}

	if got := AmountsIn("no amounts here"); got != nil {
		t.Errorf("expected nil for text without amounts, got %v", got)
	}
}
