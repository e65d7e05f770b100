package extraction

import (
	"testing"
	"time"
)

func ymd(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestValidityDirectPhrase(t *testing.T) {
	m := NewMatcher([]string{
		"kontrak ini berlaku sejak tanggal 1 Januari 2025 sampai dengan 31 Desember 2026",
	})
	vp := extractValidity(m)
	if vp == nil || vp.StartDate == nil || vp.EndDate == nil {
		t.Fatalf("expected full period, got %+v", vp)
	}
	if !vp.StartDate.Equal(ymd("2025-01-01")) || !vp.EndDate.Equal(ymd("2026-12-31")) {
		t.Errorf("period = %v .. %v", vp.StartDate, vp.EndDate)
	}
}

func TestValidityConcatenatedDates(t *testing.T) {
	m := NewMatcher([]string{
		"berlaku sejak 1Januari2025 sampai dengan 23Februari2027",
	})
	vp := extractValidity(m)
	if vp == nil || vp.StartDate == nil || vp.EndDate == nil {
		t.Fatalf("expected full period, got %+v", vp)
	}
	if !vp.StartDate.Equal(ymd("2025-01-01")) || !vp.EndDate.Equal(ymd("2027-02-23")) {
		t.Errorf("period = %v .. %v", vp.StartDate, vp.EndDate)
	}
}

func TestValidityOctoberStartDate(t *testing.T) {
	// "Oktober" contains the separator word "to"; the split must not happen
	// inside the month name.
	m := NewMatcher([]string{
		"kontrak ini berlaku sejak 1 Oktober 2025 sampai dengan 30 September 2026",
	})
	vp := extractValidity(m)
	if vp == nil || vp.StartDate == nil || vp.EndDate == nil {
		t.Fatalf("expected full period, got %+v", vp)
	}
	if !vp.StartDate.Equal(ymd("2025-10-01")) {
		t.Errorf("start = %v, want 2025-10-01", vp.StartDate)
	}
	if !vp.EndDate.Equal(ymd("2026-09-30")) {
		t.Errorf("end = %v, want 2026-09-30", vp.EndDate)
	}
}

func TestValiditySectionFallback(t *testing.T) {
	m := NewMatcher([]string{
		"pembukaan tanpa tanggal",
		"6. JANGKA WAKTU",
		"terhitung mulai 1 Maret 2025 s.d. 28 Februari 2026",
	})
	vp := extractValidity(m)
	if vp == nil || vp.StartDate == nil || vp.EndDate == nil {
		t.Fatalf("expected full period, got %+v", vp)
	}
	if !vp.StartDate.Equal(ymd("2025-03-01")) || !vp.EndDate.Equal(ymd("2026-02-28")) {
		t.Errorf("period = %v .. %v", vp.StartDate, vp.EndDate)
	}
}

func TestValidityScoredPairSkipsSignatureDates(t *testing.T) {
	// two signature-day dates plus a plausible contract pair; scoring must
	// pick the plausible pair
	m := NewMatcher([]string{
		"ditandatangani 10 Januari 2025",
		"disaksikan 11 Januari 2025",
		"periode layanan 1 Februari 2025",
		"berakhir 31 Januari 2027",
	})
	vp := extractValidity(m)
	if vp == nil || vp.StartDate == nil || vp.EndDate == nil {
		t.Fatalf("expected a period, got %+v", vp)
	}
	if vp.StartDate.Equal(ymd("2025-01-10")) && vp.EndDate.Equal(ymd("2025-01-11")) {
		t.Error("picked the signature-date pair")
	}
	if !vp.EndDate.Equal(ymd("2027-01-31")) {
		t.Errorf("end = %v, want 2027-01-31", vp.EndDate)
	}
}

func TestValidityNothingFound(t *testing.T) {
	m := NewMatcher([]string{"tidak ada tanggal"})
	if vp := extractValidity(m); vp != nil {
		t.Errorf("expected nil, got %+v", vp)
	}
}
