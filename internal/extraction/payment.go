package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Headers that open the payment-description section across templates.
var paymentSectionHeaders = []string{
	"CARA PEMBAYARAN",
	"TATA CARA PEMBAYARAN",
	"PEMBAYARAN",
}

// Indonesian/English monthly-billing phrases. Weak evidence compared to the
// termin and one-time patterns, so it is consulted last.
var recurringLexicon = []string{
	"per bulan",
	"setiap bulan",
	"tagihan bulanan",
	"bulanan",
	"monthly",
	"per month",
	"setiap bulannya",
}

var oneTimePhrases = []string{
	"one time charge",
	"onetime charge",
	"dibayar sekaligus",
	"sekaligus di muka",
}

var (
	reTerminNumbered = regexp.MustCompile(`(?i)termin[-\s]*(\d+)`)
	reTerminCount    = regexp.MustCompile(`(?i)(\d+)\s*(?:x\s*)?termin|termin\s*(\d+)\s*x`)
	reTerminOrdinal  = regexp.MustCompile(`(?i)termin\s+(pertama|kedua|ketiga|keempat|kelima|keenam|ketujuh|kedelapan)`)
)

// classifyPayment classifies the payment scheme from the payment-description
// section, falling back to the whole document when no section header is
// found. Priority is deliberate: explicit one-time and termin phrases are
// unambiguous when present, so they pre-empt the weaker recurring lexicon.
func classifyPayment(m *Matcher) *PaymentPlan {
	secStart, secEnd, sectionFound := paymentSection(m)

	// 1. explicit one time charge
	for i := secStart; i < secEnd; i++ {
		tok := m.Token(i)
		if phrase := containsAnyPhrase(tok, oneTimePhrases); phrase != "" {
			return &PaymentPlan{
				Method:      PaymentOneTime,
				Description: phrase,
				Confidence:  ConfidenceHigh,
				SourceText:  tok,
				TotalAmount: decimal.Zero,
			}
		}
	}

	// 2. termin patterns, before recurring: termin contracts routinely carry
	// monthly wording that would otherwise misclassify them
	for i := secStart; i < secEnd; i++ {
		tok := m.Token(i)
		if reTerminNumbered.MatchString(tok) || reTerminCount.MatchString(tok) || reTerminOrdinal.MatchString(tok) {
			return &PaymentPlan{
				Method:      PaymentTermin,
				Description: "pembayaran termin",
				Confidence:  ConfidenceHigh,
				SourceText:  tok,
				TotalAmount: decimal.Zero,
			}
		}
	}

	// 3. recurring lexicon: a hit inside a located section is strong; with no
	// section header anywhere, a document-wide hit is only medium evidence
	recurringConfidence := ConfidenceMedium
	if sectionFound {
		recurringConfidence = ConfidenceHigh
	}
	for i := secStart; i < secEnd; i++ {
		tok := m.Token(i)
		if phrase := containsAnyPhrase(tok, recurringLexicon); phrase != "" {
			return &PaymentPlan{
				Method:      PaymentRecurring,
				Description: phrase,
				Confidence:  recurringConfidence,
				SourceText:  tok,
				TotalAmount: decimal.Zero,
			}
		}
	}
	if sectionFound {
		for i := 0; i < m.Len(); i++ {
			tok := m.Token(i)
			if phrase := containsAnyPhrase(tok, recurringLexicon); phrase != "" {
				return &PaymentPlan{
					Method:      PaymentRecurring,
					Description: phrase,
					Confidence:  ConfidenceMedium,
					SourceText:  tok,
					TotalAmount: decimal.Zero,
				}
			}
		}
	}

	// 4. nothing matched; callers conservatively treat this as one_time_charge
	return &PaymentPlan{
		Method:      PaymentUnknown,
		Description: "tidak teridentifikasi",
		Confidence:  ConfidenceLow,
		TotalAmount: decimal.Zero,
	}
}

// paymentSection returns the half-open token range of the payment section
// and whether a header was actually located; without one the whole document
// is the range.
func paymentSection(m *Matcher) (int, int, bool) {
	for _, header := range paymentSectionHeaders {
		idx := m.FindContaining(header, 0)
		if idx < 0 {
			idx = m.FindFuzzy(header, 0, FuzzyThresholdDefault)
		}
		if idx >= 0 {
			return idx, m.Len(), true
		}
	}
	return 0, m.Len(), false
}

func containsAnyPhrase(tok string, phrases []string) string {
	folded := foldText(tok)
	for _, p := range phrases {
		if strings.Contains(folded, foldText(p)) {
			return p
		}
	}
	return ""
}
