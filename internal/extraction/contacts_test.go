package extraction

import "testing"

func contactTokens() []string {
	return []string{
		"7. CONTACT PERSON",
		"TELKOM",
		"Nama",
		"Budi Santoso",
		"Jabatan",
		"Account Manager",
		"Email",
		"budi.santoso@telkom.co.id",
		"Telepon",
		"0812-3456-7890",
		"Nama",
		"Siti Rahma",
		"Jabatan",
		"Procurement",
		"Email",
		"siti@contoh.co.id",
	}
}

func TestExtractContactsTwoBlocks(t *testing.T) {
	m := NewMatcher(contactTokens())
	telkom, customer := extractContacts(m)
	if telkom == nil || customer == nil {
		t.Fatalf("expected both blocks, got telkom=%v customer=%v", telkom, customer)
	}
	if telkom.Name != "Budi Santoso" || telkom.Email != "budi.santoso@telkom.co.id" {
		t.Errorf("telkom block = %+v", telkom)
	}
	if telkom.Phone != "0812-3456-7890" {
		t.Errorf("telkom phone = %q", telkom.Phone)
	}
	if customer.Name != "Siti Rahma" || customer.Title != "Procurement" {
		t.Errorf("customer block = %+v", customer)
	}
	if customer.Email != "siti@contoh.co.id" {
		t.Errorf("customer email = %q", customer.Email)
	}
}

func TestContactInvalidEmailNotForced(t *testing.T) {
	m := NewMatcher([]string{
		"CONTACT PERSON",
		"TELKOM",
		"Nama",
		"Budi Santoso",
		"Email",
		"bukan email",
		"nilai lain",
	})
	telkom, _ := extractContacts(m)
	if telkom == nil {
		t.Fatal("expected telkom block")
	}
	if telkom.Email != "" {
		t.Errorf("email = %q, want empty (invalid shape never recorded)", telkom.Email)
	}
	if telkom.Name != "Budi Santoso" {
		t.Errorf("name = %q", telkom.Name)
	}
}

func TestContactValueOnTokenAfterLabel(t *testing.T) {
	// phone value arrives one token late; the single-token lookahead covers it
	m := NewMatcher([]string{
		"CONTACT PERSON",
		"TELKOM",
		"Telepon",
		":",
		"0812 3456 789",
	})
	telkom, _ := extractContacts(m)
	if telkom == nil || telkom.Phone != "0812 3456 789" {
		t.Errorf("telkom = %+v, want phone recovered via lookahead", telkom)
	}
}

func TestExtractContactsNoAnchor(t *testing.T) {
	m := NewMatcher([]string{"tidak ada kontak"})
	telkom, customer := extractContacts(m)
	if telkom != nil || customer != nil {
		t.Errorf("expected nil blocks, got %v %v", telkom, customer)
	}
}
