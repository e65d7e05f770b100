package extraction

import (
	"reflect"
	"testing"
)

func TestNormalizeTokens(t *testing.T) {
	want := []string{"Nama", "PT Contoh"}
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"string slice", []string{" Nama ", "PT Contoh", "  "}, want},
		{"any slice", []any{"Nama", "PT Contoh", 42}, want},
		{"text block", "Nama\nPT Contoh\n\n", want},
		{"crlf block", "Nama\r\nPT Contoh", want},
		{"labeled recognized_text", map[string]any{"recognized_text": []any{"Nama", "PT Contoh"}}, want},
		{"labeled lines", map[string]any{"lines": []string{"Nama", "PT Contoh"}}, want},
		{"labeled text block", map[string]any{"text": "Nama\nPT Contoh"}, want},
		{"unknown key", map[string]any{"bogus": []string{"Nama"}}, nil},
		{"nil", nil, nil},
		{"number", 7, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTokens(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NormalizeTokens(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
