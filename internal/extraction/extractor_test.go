package extraction

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func page1Tokens() []string {
	return []string{
		"KONTRAK BERLANGGANAN",
		"2. PELANGGAN",
		"Nama",
		"PT Contoh",
		"Alamat",
		"Jl. Gatot Subroto Kav. 52, Jakarta Selatan",
		"NPWP",
		"01.234.567.8-901.000",
		"Jumlah Layanan Connectivity",
		"2",
		"Jumlah Layanan Non Connectivity",
		"1",
		"4. RINCIAN BIAYA",
		"Biaya Instalasi",
		"Rp. 0.,",
		"Biaya Langganan Tahunan",
		"Rp. 20.113.200,",
		"5. CARA PEMBAYARAN",
		"Pembayaran dilakukan secara One Time Charge",
	}
}

func page2Tokens() []string {
	return []string{
		"kontrak ini berlaku sejak 1 Januari 2025 sampai dengan 31 Desember 2026",
		"7. CONTACT PERSON",
		"TELKOM",
		"Nama",
		"Budi Santoso",
		"Email",
		"budi.santoso@telkom.co.id",
		"Nama",
		"Siti Rahma",
		"Email",
		"siti@contoh.co.id",
	}
}

func TestExtractPageEndToEnd(t *testing.T) {
	rec := ExtractPage(page1Tokens())

	if rec.Customer.Name != "PT Contoh" {
		t.Errorf("customer name = %q", rec.Customer.Name)
	}
	if rec.Customer.TaxID != "01.234.567.8-901.000" {
		t.Errorf("tax id = %q", rec.Customer.TaxID)
	}
	if rec.Services.Connectivity != 2 || rec.Services.NonConnectivity != 1 || rec.Services.Bundling != 0 {
		t.Errorf("services = %+v", rec.Services)
	}
	if len(rec.CostItems) != 1 {
		t.Fatalf("cost items = %d, want 1", len(rec.CostItems))
	}
	if !rec.CostItems[0].InstallationCost.IsZero() {
		t.Errorf("installation = %s, want 0", rec.CostItems[0].InstallationCost)
	}
	if !rec.CostItems[0].SubscriptionCost.Equal(decimal.NewFromInt(20113200)) {
		t.Errorf("subscription = %s, want 20113200", rec.CostItems[0].SubscriptionCost)
	}
	if rec.Payment == nil || rec.Payment.Method != PaymentOneTime {
		t.Errorf("payment = %+v, want one_time_charge", rec.Payment)
	}
	if rec.Metadata.ExtractedAt.IsZero() {
		t.Error("expected extraction timestamp")
	}
}

func TestMergeSecondPage(t *testing.T) {
	rec := ExtractPage(page1Tokens())
	if rec.Validity != nil {
		t.Fatalf("page 1 should not yield validity, got %+v", rec.Validity)
	}

	rec = MergeSecondPage(rec, page2Tokens())
	if rec.Validity == nil || rec.Validity.StartDate == nil || rec.Validity.EndDate == nil {
		t.Fatalf("validity not merged: %+v", rec.Validity)
	}
	if rec.TelkomContact == nil || rec.TelkomContact.Name != "Budi Santoso" {
		t.Errorf("telkom contact = %+v", rec.TelkomContact)
	}
	if rec.Customer.Contact == nil || rec.Customer.Contact.Email != "siti@contoh.co.id" {
		t.Errorf("customer contact = %+v", rec.Customer.Contact)
	}
}

func TestMergeIdempotent(t *testing.T) {
	rec := ExtractPage(page1Tokens())
	once := MergeSecondPage(rec, page2Tokens())

	snapshot, err := json.Marshal(once)
	if err != nil {
		t.Fatal(err)
	}
	twice := MergeSecondPage(once, page2Tokens())
	again, err := json.Marshal(twice)
	if err != nil {
		t.Fatal(err)
	}

	var a, b map[string]any
	if err := json.Unmarshal(snapshot, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(again, &b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("second merge changed the record:\nfirst:  %s\nsecond: %s", snapshot, again)
	}
}

func TestRecordValidatesAgainstSchema(t *testing.T) {
	rec := MergeSecondPage(ExtractPage(page1Tokens()), page2Tokens())
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateRecordJSON(data); err != nil {
		t.Errorf("record failed schema validation: %v", err)
	}
}
