package extraction

import "testing"

func TestExtractCustomer(t *testing.T) {
	m := NewMatcher([]string{
		"2. PELANGGAN",
		"Nama",
		"PT Contoh",
		"Alamat",
		"Jl. Jend. Sudirman No. 1, Jakarta",
		"NPWP",
		"01.234.567.8-901.000",
	})
	info := extractCustomer(m)
	if info.Name != "PT Contoh" {
		t.Errorf("Name = %q, want %q", info.Name, "PT Contoh")
	}
	if info.Address != "Jl. Jend. Sudirman No. 1, Jakarta" {
		t.Errorf("Address = %q", info.Address)
	}
	if info.TaxID != "01.234.567.8-901.000" {
		t.Errorf("TaxID = %q", info.TaxID)
	}
}

func TestExtractCustomerRejectsBadNPWP(t *testing.T) {
	m := NewMatcher([]string{"PELANGGAN", "NPWP", "tidak terbaca"})
	info := extractCustomer(m)
	if info.TaxID != "" {
		t.Errorf("TaxID = %q, want empty for non-NPWP-shaped value", info.TaxID)
	}
}

func TestExtractCustomerMissingEverything(t *testing.T) {
	m := NewMatcher([]string{"halaman kosong"})
	info := extractCustomer(m)
	if info.Name != "" || info.Address != "" || info.TaxID != "" || info.Representative != nil {
		t.Errorf("expected empty CustomerInfo, got %+v", info)
	}
}

func TestExtractServiceCounts(t *testing.T) {
	m := NewMatcher([]string{
		"Jumlah Layanan Connectivity",
		"3",
		"Jumlah Layanan Non Connectivity",
		"0",
		"JumlahLayananBundling",
		"2",
	})
	got := extractServiceCounts(m)
	if got.Connectivity != 3 || got.NonConnectivity != 0 || got.Bundling != 2 {
		t.Errorf("counts = %+v, want {3 0 2}", got)
	}
}

func TestServiceCountBound(t *testing.T) {
	// a stray large number adjacent to the label is OCR noise, not data
	m := NewMatcher([]string{"Jumlah Layanan Connectivity", "137"})
	got := extractServiceCounts(m)
	if got.Connectivity != 0 {
		t.Errorf("Connectivity = %d, want 0 (137 exceeds sanity bound)", got.Connectivity)
	}
}

func TestServiceCountFuzzyLabel(t *testing.T) {
	m := NewMatcher([]string{"Jumlah Layanan C0nnectivity", "4"})
	got := extractServiceCounts(m)
	if got.Connectivity != 4 {
		t.Errorf("Connectivity = %d, want 4 via fuzzy label", got.Connectivity)
	}
}

func TestServiceCountNonNumericNeighbor(t *testing.T) {
	m := NewMatcher([]string{"Jumlah Layanan Bundling", "tiga"})
	got := extractServiceCounts(m)
	if got.Bundling != 0 {
		t.Errorf("Bundling = %d, want 0 for non-numeric neighbor", got.Bundling)
	}
}
