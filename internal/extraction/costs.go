package extraction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Label spelling variants seen across contract templates and OCR engines.
var (
	installationLabels = []string{
		"Biaya Instalasi",
		"BiayaInstalasi",
		"BIAYA INSTALASI",
		"Biaya Pemasangan",
	}
	subscriptionLabels = []string{
		"Biaya Langganan Tahunan",
		"Biaya Langganan",
		"BiayaLangganan",
		"BIAYA LANGGANAN",
		"Biaya Berlangganan",
	}
	freeWords = []string{"free", "gratis"}
)

// extractCosts recovers the installation/subscription cost pair through an
// ordered strategy ladder. A result is usable only when the subscription
// cost is non-zero: in this domain subscription is never legitimately free,
// so "installation free, subscription zero" means the strategy failed and
// the ladder continues. When every strategy fails the zero pair is returned.
func extractCosts(m *Matcher) CostItem {
	strategies := []func(*Matcher) CostItem{
		structuredTableCosts,
		freeInstallationCosts,
		valueBeforeLabelCosts,
		labelProximityCosts,
		dualAmountCosts,
	}
	for _, strat := range strategies {
		if item := strat(m); item.SubscriptionCost.IsPositive() {
			return item
		}
	}
	return CostItem{InstallationCost: decimal.Zero, SubscriptionCost: decimal.Zero}
}

// structuredTableCosts locates the cost-section header and walks forward
// expecting the fixed label->amount->label->amount sequence of an intact
// cost table.
func structuredTableCosts(m *Matcher) CostItem {
	header := m.FindContaining("BIAYA", 0)
	if header < 0 {
		return CostItem{}
	}

	item := CostItem{InstallationCost: decimal.Zero, SubscriptionCost: decimal.Zero}
	end := min(header+12, m.Len()-1)
	for i := header; i <= end; i++ {
		tok := m.Token(i)
		next := m.Token(i + 1)
		switch {
		case matchesAnyLabel(tok, installationLabels) && LooksLikeAmount(next):
			item.InstallationCost = ParseAmount(next)
			i++
		case matchesAnyLabel(tok, subscriptionLabels) && LooksLikeAmount(next):
			item.SubscriptionCost = ParseAmount(next)
			i++
		}
	}
	return item
}

// freeInstallationCosts handles templates that state installation as "Free"
// or "Gratis" instead of a zero amount; the subscription amount is then the
// first amount following its own label, or the first Rp amount after the
// free marker.
func freeInstallationCosts(m *Matcher) CostItem {
	for _, label := range installationLabels {
		idx := m.FindContaining(label, 0)
		if idx < 0 {
			continue
		}
		if !isFreeToken(m.Token(idx+1)) && !containsFreeWord(m.Token(idx)) {
			continue
		}
		item := CostItem{InstallationCost: decimal.Zero, SubscriptionCost: decimal.Zero}
		for _, sub := range subscriptionLabels {
			if si := m.FindContaining(sub, idx); si >= 0 {
				if hit := m.FindNearby(si, 2, LooksLikeAmount); hit >= 0 {
					item.SubscriptionCost = ParseAmount(m.Token(hit))
					return item
				}
			}
		}
		for i := idx + 1; i < m.Len(); i++ {
			if amts := AmountsIn(m.Token(i)); len(amts) > 0 && amts[0].IsPositive() {
				item.SubscriptionCost = amts[0]
				return item
			}
		}
		return item
	}
	return CostItem{}
}

// valueBeforeLabelCosts covers documents whose OCR token order inverts
// normal reading order inside the cost table, leaving each amount directly
// before its label.
func valueBeforeLabelCosts(m *Matcher) CostItem {
	item := CostItem{InstallationCost: decimal.Zero, SubscriptionCost: decimal.Zero}
	for _, label := range installationLabels {
		if idx := m.FindContaining(label, 0); idx > 0 && LooksLikeAmount(m.Token(idx-1)) {
			item.InstallationCost = ParseAmount(m.Token(idx - 1))
			break
		}
	}
	for _, label := range subscriptionLabels {
		if idx := m.FindContaining(label, 0); idx > 0 && LooksLikeAmount(m.Token(idx-1)) {
			item.SubscriptionCost = ParseAmount(m.Token(idx - 1))
			break
		}
	}
	return item
}

// labelProximityCosts is the generic fallback: containing match on any label
// variant, then a short-radius scan for an amount-shaped neighbor.
func labelProximityCosts(m *Matcher) CostItem {
	item := CostItem{InstallationCost: decimal.Zero, SubscriptionCost: decimal.Zero}
	if amt, ok := amountNearAnyLabel(m, installationLabels); ok {
		item.InstallationCost = amt
	}
	if amt, ok := amountNearAnyLabel(m, subscriptionLabels); ok {
		item.SubscriptionCost = amt
	}
	return item
}

// dualAmountCosts is the last resort for OCR output that glues both amounts
// into a single fragment: first amount is installation, second subscription.
func dualAmountCosts(m *Matcher) CostItem {
	for i := 0; i < m.Len(); i++ {
		amts := AmountsIn(m.Token(i))
		if len(amts) >= 2 {
			return CostItem{InstallationCost: amts[0], SubscriptionCost: amts[1]}
		}
	}
	return CostItem{}
}

func amountNearAnyLabel(m *Matcher, labels []string) (decimal.Decimal, bool) {
	for _, label := range labels {
		idx := m.FindContaining(label, 0)
		if idx < 0 {
			continue
		}
		if hit := m.FindNearby(idx, 2, LooksLikeAmount); hit >= 0 {
			return ParseAmount(m.Token(hit)), true
		}
	}
	return decimal.Zero, false
}

func matchesAnyLabel(tok string, labels []string) bool {
	for _, label := range labels {
		if foldText(tok) == foldText(label) || Similarity(tok, label) >= FuzzyThresholdDefault {
			return true
		}
	}
	return false
}

func isFreeToken(tok string) bool {
	tok = strings.ToLower(strings.TrimSpace(tok))
	for _, w := range freeWords {
		if tok == w {
			return true
		}
	}
	return false
}

func containsFreeWord(tok string) bool {
	tok = strings.ToLower(tok)
	for _, w := range freeWords {
		if strings.Contains(tok, w) {
			return true
		}
	}
	return false
}
