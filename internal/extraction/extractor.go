// Package extraction turns the ordered, layout-free token stream of a
// scanned contract page into a typed ContractRecord. Every extractor layers
// fallback strategies from strict to loose, because no single matching
// strategy survives all OCR engines, fonts and document templates. The
// engine never fails: anything it cannot recover stays absent.
package extraction

import (
	"time"
)

// ExtractPage runs the full page-1 extraction over a normalized token
// sequence and assembles the contract record. The engine is a pure function
// of its input: no I/O, no shared state.
func ExtractPage(tokens []string) *ContractRecord {
	start := time.Now()
	m := NewMatcher(tokens)

	rec := &ContractRecord{
		Customer: extractCustomer(m),
		Services: extractServiceCounts(m),
	}
	rec.CostItems = []CostItem{extractCosts(m)}

	plan := classifyPayment(m)
	if plan.Method == PaymentTermin {
		installments, count, total := extractTermin(m, rec.TotalCost())
		plan.Installments = installments
		plan.TotalCount = count
		plan.TotalAmount = total
	}
	rec.Payment = plan

	telkom, customer := extractContacts(m)
	rec.TelkomContact = telkom
	if customer != nil {
		rec.Customer.Contact = customer
	}

	rec.Validity = extractValidity(m)

	rec.Metadata = ExtractionMetadata{
		ExtractedAt: start.UTC(),
		Elapsed:     time.Since(start),
	}
	return rec
}

// MergeSecondPage fills fields still unset on rec from a page-2 token
// sequence. Fields populated from page 1 are never overwritten, so a second
// call with the same inputs changes nothing.
func MergeSecondPage(rec *ContractRecord, tokens []string) *ContractRecord {
	if rec == nil {
		return ExtractPage(tokens)
	}
	m := NewMatcher(tokens)

	if vp := extractValidity(m); vp != nil {
		if rec.Validity == nil {
			rec.Validity = vp
		} else {
			if rec.Validity.StartDate == nil {
				rec.Validity.StartDate = vp.StartDate
			}
			if rec.Validity.EndDate == nil {
				rec.Validity.EndDate = vp.EndDate
			}
		}
	}

	telkom, customer := extractContacts(m)
	if rec.TelkomContact.IsEmpty() && !telkom.IsEmpty() {
		rec.TelkomContact = telkom
	}
	if rec.Customer.Contact.IsEmpty() && !customer.IsEmpty() {
		rec.Customer.Contact = customer
	}
	return rec
}
