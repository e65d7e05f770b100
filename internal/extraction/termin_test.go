package extraction

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractTerminPrimary(t *testing.T) {
	m := NewMatcher([]string{
		"CARA PEMBAYARAN",
		"Termin-2, yaitu periode Juli 2025 sebesar Rp. 30.000.000",
		"Termin-1, yaitu periode Januari 2025 sebesar Rp. 50.000.000",
		"Termin-3, yaitu periode Januari 2026 sebesar Rp. 20.000.000",
	})
	installments, count, total := extractTermin(m, decimal.Zero)
	if count != 3 || len(installments) != 3 {
		t.Fatalf("count = %d installments = %d, want 3", count, len(installments))
	}

	// sorted by sequence number regardless of document order
	for i, ins := range installments {
		if ins.Sequence != i+1 {
			t.Errorf("installment %d has sequence %d", i, ins.Sequence)
		}
	}
	if installments[0].Period != "Januari 2025" {
		t.Errorf("period = %q, want %q", installments[0].Period, "Januari 2025")
	}

	// total equals the exact sum of matched amounts
	sum := decimal.Zero
	for _, ins := range installments {
		sum = sum.Add(ins.Amount)
	}
	if !total.Equal(sum) {
		t.Errorf("total = %s, sum of installments = %s", total, sum)
	}
	if !total.Equal(decimal.NewFromInt(100000000)) {
		t.Errorf("total = %s, want 100000000", total)
	}
}

func TestExtractTerminFallbackAutoGenerates(t *testing.T) {
	m := NewMatcher([]string{
		"CARA PEMBAYARAN",
		"Pembayaran dilakukan Termin4X",
	})
	total := decimal.NewFromInt(100000000)
	installments, count, gotTotal := extractTermin(m, total)
	if count != 4 || len(installments) != 4 {
		t.Fatalf("count = %d installments = %d, want 4", count, len(installments))
	}
	if !gotTotal.Equal(total) {
		t.Errorf("total = %s, want %s", gotTotal, total)
	}
	per := decimal.NewFromInt(25000000)
	for _, ins := range installments {
		if !ins.Amount.Equal(per) {
			t.Errorf("installment %d amount = %s, want 25000000", ins.Sequence, ins.Amount)
		}
		if !strings.Contains(ins.SourceText, "(auto-generated)") {
			t.Errorf("installment %d not flagged as synthesized: %q", ins.Sequence, ins.SourceText)
		}
	}
}

func TestGenerateTerminScheduleRoundingRemainder(t *testing.T) {
	total := decimal.NewFromInt(100)
	installments := GenerateTerminSchedule(3, total)
	if len(installments) != 3 {
		t.Fatalf("len = %d, want 3", len(installments))
	}
	sum := decimal.Zero
	for _, ins := range installments {
		sum = sum.Add(ins.Amount)
	}
	if !sum.Equal(total) {
		t.Errorf("sum = %s, want %s (last installment absorbs remainder)", sum, total)
	}
}

func TestExtractTerminNothing(t *testing.T) {
	m := NewMatcher([]string{"tidak ada jadwal"})
	installments, count, total := extractTermin(m, decimal.NewFromInt(5000))
	if installments != nil || count != 0 || !total.IsZero() {
		t.Errorf("expected empty result, got %v %d %s", installments, count, total)
	}
}
