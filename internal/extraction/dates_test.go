package extraction

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string // YYYY-MM-DD, empty means no date
	}{
		{"2025-1-1", "2025-01-01"},
		{"2025-01-01", "2025-01-01"},
		{"23-02-2027", "2027-02-23"},
		{"23/02/2027", "2027-02-23"},
		{"1 Januari 2025", "2025-01-01"},
		{"23 Februari 2027", "2027-02-23"},
		{"23Februari2027", "2027-02-23"},
		{"23Feb2027", "2027-02-23"},
		{"23Februari 2027", "2027-02-23"},
		{"17 Agustus 2026", "2026-08-17"},
		{"5 Des 2025", "2025-12-05"},
		{"31 Februari 2025", ""}, // rollover rejected
		{"banana", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if tc.want == "" {
			if ok {
				t.Errorf("ParseDate(%q) = %v, want no date", tc.in, got)
			}
			continue
		}
		want, err := time.Parse("2006-01-02", tc.want)
		if err != nil {
			t.Fatalf("bad case %q: %v", tc.want, err)
		}
		if !ok || !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v ok=%v, want %s", tc.in, got, ok, tc.want)
		}
	}
}

func TestParseDateReturnsMidnightUTC(t *testing.T) {
	got, ok := ParseDate("1 Januari 2025")
	if !ok {
		t.Fatal("expected a date")
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("expected midnight UTC, got %v", got)
	}
}

func TestDatesIn(t *testing.T) {
	dates := DatesIn("berlaku sejak 1 Januari 2025 sampai dengan 31 Desember 2026")
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d: %v", len(dates), dates)
	}
	if dates[0].Year() != 2025 || dates[1].Year() != 2026 {
		t.Errorf("unexpected dates: %v", dates)
	}

	if got := DatesIn("tidak ada tanggal di sini"); len(got) != 0 {
		t.Errorf("expected no dates, got %v", got)
	}
}
