package extraction

import "testing"

func TestClassifyOneTime(t *testing.T) {
	m := NewMatcher([]string{
		"5. CARA PEMBAYARAN",
		"Biaya dibayarkan secara One Time Charge di muka",
	})
	plan := classifyPayment(m)
	if plan.Method != PaymentOneTime {
		t.Fatalf("method = %s, want one_time_charge", plan.Method)
	}
	if plan.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %s, want HIGH", plan.Confidence)
	}
	if plan.SourceText == "" {
		t.Error("expected raw source text for audit")
	}
}

func TestClassifyTerminBeatsRecurring(t *testing.T) {
	// a fragment carrying both termin and monthly wording is a termin plan
	m := NewMatcher([]string{
		"CARA PEMBAYARAN",
		"Pembayaran dilakukan per bulan dalam Termin-4 sesuai jadwal",
	})
	plan := classifyPayment(m)
	if plan.Method != PaymentTermin {
		t.Fatalf("method = %s, want termin", plan.Method)
	}
	if plan.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %s, want HIGH", plan.Confidence)
	}
}

func TestClassifyRecurringInSection(t *testing.T) {
	m := NewMatcher([]string{
		"TATA CARA PEMBAYARAN",
		"Tagihan diterbitkan setiap bulan",
	})
	plan := classifyPayment(m)
	if plan.Method != PaymentRecurring {
		t.Fatalf("method = %s, want recurring", plan.Method)
	}
	if plan.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %s, want HIGH for section hit", plan.Confidence)
	}
}

func TestClassifyRecurringOutsideSection(t *testing.T) {
	m := NewMatcher([]string{
		"Layanan ditagihkan per bulan kepada pelanggan",
		"CARA PEMBAYARAN",
		"ketentuan lain tidak terbaca",
	})
	plan := classifyPayment(m)
	if plan.Method != PaymentRecurring {
		t.Fatalf("method = %s, want recurring", plan.Method)
	}
	if plan.Confidence != ConfidenceMedium {
		t.Errorf("confidence = %s, want MEDIUM for document-wide hit", plan.Confidence)
	}
}

func TestClassifyRecurringWithoutHeader(t *testing.T) {
	// with no payment header anywhere the "section" is the whole document,
	// so a recurring hit is only medium evidence
	m := NewMatcher([]string{
		"Tagihan diterbitkan setiap bulan oleh penyedia layanan",
		"halaman kedua tidak memuat judul bagian",
	})
	plan := classifyPayment(m)
	if plan.Method != PaymentRecurring {
		t.Fatalf("method = %s, want recurring", plan.Method)
	}
	if plan.Confidence != ConfidenceMedium {
		t.Errorf("confidence = %s, want MEDIUM without a located section", plan.Confidence)
	}
}

func TestClassifyUnknown(t *testing.T) {
	m := NewMatcher([]string{"tidak ada informasi pembayaran yang terbaca"})
	plan := classifyPayment(m)
	if plan.Method != PaymentUnknown {
		t.Fatalf("method = %s, want unknown", plan.Method)
	}
	if plan.Confidence != ConfidenceLow {
		t.Errorf("confidence = %s, want LOW", plan.Confidence)
	}
}
