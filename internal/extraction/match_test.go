package extraction

import "testing"

func TestSimilaritySymmetricAndReflexive(t *testing.T) {
	pairs := [][2]string{
		{"Biaya Instalasi", "Biaya Instalasi"},
		{"Biaya Instalasi", "Biaya 1nstalasi"},
		{"Jumlah Layanan Connectivity", "Jumlah Layanan"},
		{"Nama", "NPWP"},
		{"", ""},
		{"termin", ""},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q,%q)=%v != Similarity(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
	for _, s := range []string{"Biaya Instalasi", "NPWP", "termin 1", ""} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q,%q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilarityGlyphFolding(t *testing.T) {
	// 0 vs o confusion must not break a label match
	if got := Similarity("Biaya Instalasi", "Biaya Instalas1"); got < 0.3 {
		t.Errorf("expected partial similarity despite glyph damage, got %v", got)
	}
	if got := Similarity("c0nnectivity", "connectivity"); got != 1.0 {
		t.Errorf("0/o fold should make these identical, got %v", got)
	}
}

func TestFindExact(t *testing.T) {
	m := NewMatcher([]string{"Nama", "PT Contoh", "nama", "lain"})
	if got := m.FindExact("NAMA", 0); got != 0 {
		t.Errorf("FindExact from 0 = %d, want 0", got)
	}
	if got := m.FindExact("NAMA", 1); got != 2 {
		t.Errorf("FindExact from 1 = %d, want 2", got)
	}
	if got := m.FindExact("tidak ada", 0); got != -1 {
		t.Errorf("FindExact miss = %d, want -1", got)
	}
}

func TestFindFuzzy(t *testing.T) {
	m := NewMatcher([]string{"2. PELANGGAN", "Jumlah Layanan C0nnectivity", "3"})
	if got := m.FindFuzzy("Jumlah Layanan Connectivity", 0, FuzzyThresholdStrict); got != 1 {
		t.Errorf("FindFuzzy = %d, want 1", got)
	}
	if got := m.FindFuzzy("Jangka Waktu Kontrak", 0, FuzzyThresholdStrict); got != -1 {
		t.Errorf("FindFuzzy miss = %d, want -1", got)
	}
}

func TestFindContaining(t *testing.T) {
	m := NewMatcher([]string{"intro", "4. RINCIAN BIAYA:", "Biaya Instalasi"})
	if got := m.FindContaining("BIAYA", 0); got != 1 {
		t.Errorf("FindContaining = %d, want 1", got)
	}
	// containment works in either direction: "Langganan" is contained by
	// the label, so this is a hit
	m2 := NewMatcher([]string{"Langganan"})
	if got := m2.FindContaining("Biaya Langganan Tahunan", 0); got != 0 {
		t.Errorf("reverse containment = %d, want 0", got)
	}
}

func TestFindNearby(t *testing.T) {
	m := NewMatcher([]string{"a", "b", "Jumlah", "3", "c"})
	got := m.FindNearby(2, 1, IsNumericToken)
	if got != 3 {
		t.Errorf("FindNearby = %d, want 3", got)
	}
	if got := m.FindNearby(0, 1, IsNumericToken); got != -1 {
		t.Errorf("FindNearby miss = %d, want -1", got)
	}
}
