package extraction

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStructuredTableCosts(t *testing.T) {
	m := NewMatcher([]string{
		"4. RINCIAN BIAYA",
		"Biaya Instalasi",
		"Rp. 500.000",
		"Biaya Langganan Tahunan",
		"Rp. 20.113.200,",
	})
	item := extractCosts(m)
	if !item.InstallationCost.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("installation = %s, want 500000", item.InstallationCost)
	}
	if !item.SubscriptionCost.Equal(decimal.NewFromInt(20113200)) {
		t.Errorf("subscription = %s, want 20113200", item.SubscriptionCost)
	}
}

func TestCostsZeroInstallation(t *testing.T) {
	m := NewMatcher([]string{
		"Biaya Instalasi",
		"Rp. 0.,",
		"Biaya Langganan Tahunan",
		"Rp. 20.113.200,",
	})
	item := extractCosts(m)
	if !item.InstallationCost.IsZero() {
		t.Errorf("installation = %s, want 0", item.InstallationCost)
	}
	if !item.SubscriptionCost.Equal(decimal.NewFromInt(20113200)) {
		t.Errorf("subscription = %s, want 20113200", item.SubscriptionCost)
	}
}

func TestCostsFreeInstallation(t *testing.T) {
	m := NewMatcher([]string{
		"Biaya Instalasi",
		"Free",
		"Biaya Langganan",
		"Rp. 12.000.000",
	})
	item := extractCosts(m)
	if !item.InstallationCost.IsZero() {
		t.Errorf("installation = %s, want 0 for Free", item.InstallationCost)
	}
	if !item.SubscriptionCost.Equal(decimal.NewFromInt(12000000)) {
		t.Errorf("subscription = %s, want 12000000", item.SubscriptionCost)
	}
}

func TestCostsValueBeforeLabel(t *testing.T) {
	m := NewMatcher([]string{
		"Rp. 750.000",
		"Biaya Instalasi",
		"Rp. 9.600.000",
		"Biaya Langganan Tahunan",
	})
	item := extractCosts(m)
	if !item.InstallationCost.Equal(decimal.NewFromInt(750000)) {
		t.Errorf("installation = %s, want 750000", item.InstallationCost)
	}
	if !item.SubscriptionCost.Equal(decimal.NewFromInt(9600000)) {
		t.Errorf("subscription = %s, want 9600000", item.SubscriptionCost)
	}
}

func TestCostsDualAmountFragment(t *testing.T) {
	m := NewMatcher([]string{
		"halaman lain",
		"Instalasi dan langganan: Rp. 500.000 Rp. 8.400.000",
	})
	item := extractCosts(m)
	if !item.InstallationCost.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("installation = %s, want 500000", item.InstallationCost)
	}
	if !item.SubscriptionCost.Equal(decimal.NewFromInt(8400000)) {
		t.Errorf("subscription = %s, want 8400000", item.SubscriptionCost)
	}
}

func TestCostsNothingFound(t *testing.T) {
	m := NewMatcher([]string{"tidak ada biaya di sini"})
	item := extractCosts(m)
	if !item.InstallationCost.IsZero() || !item.SubscriptionCost.IsZero() {
		t.Errorf("expected zero pair, got %+v", item)
	}
}
