package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxServiceCount bounds service-category counters; a larger adjacent number
// is OCR noise, not data.
const MaxServiceCount = 20

var (
	reNPWP      = regexp.MustCompile(`^[0-9][0-9.\-]{8,}$`)
	reLabelLike = regexp.MustCompile(`(?i)^(nama|alamat|npwp|jabatan|email|e-mail|telepon|telp|no\.?\s*hp|hp)\b`)
)

// Label spelling variants per service category: concatenated, spaced, and
// upper-cased forms all occur across document templates.
var serviceLabelVariants = map[string][]string{
	"connectivity": {
		"Jumlah Layanan Connectivity",
		"JumlahLayananConnectivity",
		"JUMLAH LAYANAN CONNECTIVITY",
	},
	"non_connectivity": {
		"Jumlah Layanan Non Connectivity",
		"JumlahLayananNonConnectivity",
		"JUMLAH LAYANAN NON CONNECTIVITY",
	},
	"bundling": {
		"Jumlah Layanan Bundling",
		"JumlahLayananBundling",
		"JUMLAH LAYANAN BUNDLING",
	},
}

// extractCustomer reads the customer identity block: the section anchored by
// "PELANGGAN", then label -> following-token values for name, address and
// NPWP, plus the optional signing representative.
func extractCustomer(m *Matcher) CustomerInfo {
	var info CustomerInfo

	start := m.FindContaining("PELANGGAN", 0)
	if start < 0 {
		start = 0
	}

	if v := labelValue(m, start, "Nama"); v != "" {
		info.Name = v
	}
	if v := labelValue(m, start, "Alamat"); v != "" {
		info.Address = v
	}
	if v := labelValue(m, start, "NPWP"); v != "" && reNPWP.MatchString(strings.ReplaceAll(v, " ", "")) {
		info.TaxID = v
	}

	if repIdx := m.FindContaining("Diwakili", start); repIdx >= 0 {
		rep := Representative{}
		if v := labelValue(m, repIdx, "Nama"); v != "" {
			rep.Name = v
		}
		if v := labelValue(m, repIdx, "Jabatan"); v != "" {
			rep.Title = v
		}
		if rep.Name != "" || rep.Title != "" {
			info.Representative = &rep
		}
	} else if v := labelValue(m, start, "Jabatan"); v != "" {
		info.Representative = &Representative{Title: v}
	}

	return info
}

// labelValue resolves one label to the token that immediately follows it,
// chaining exact then fuzzy then containing lookup. Tokens that are
// themselves labels are never accepted as values.
func labelValue(m *Matcher, from int, label string) string {
	idx := m.FindExact(label, from)
	if idx < 0 {
		idx = m.FindFuzzy(label, from, FuzzyThresholdStrict)
	}
	if idx < 0 {
		idx = m.FindContaining(label, from)
	}
	if idx < 0 {
		return ""
	}
	next := strings.TrimSpace(m.Token(idx + 1))
	if next == "" || reLabelLike.MatchString(next) {
		return ""
	}
	return next
}

// extractServiceCounts recovers the three per-category counters, trying each
// spelling variant against exact, fuzzy and containing strategies in order.
// Only purely numeric neighbors within 0..MaxServiceCount are accepted; the
// default is 0.
func extractServiceCounts(m *Matcher) ServiceCounts {
	return ServiceCounts{
		Connectivity:    extractServiceCount(m, serviceLabelVariants["connectivity"]),
		NonConnectivity: extractServiceCount(m, serviceLabelVariants["non_connectivity"]),
		Bundling:        extractServiceCount(m, serviceLabelVariants["bundling"]),
	}
}

func extractServiceCount(m *Matcher, variants []string) int {
	for _, label := range variants {
		if idx := m.FindExact(label, 0); idx >= 0 {
			if n, ok := boundedCount(m.Token(idx + 1)); ok {
				return n
			}
		}
	}
	for _, label := range variants {
		if idx := m.FindFuzzy(label, 0, FuzzyThresholdStrict); idx >= 0 {
			if n, ok := boundedCount(m.Token(idx + 1)); ok {
				return n
			}
		}
	}
	for _, label := range variants {
		idx := m.FindContaining(label, 0)
		if idx < 0 {
			continue
		}
		hit := m.FindNearby(idx, 1, func(tok string) bool {
			_, ok := boundedCount(tok)
			return ok
		})
		if hit >= 0 {
			n, _ := boundedCount(m.Token(hit))
			return n
		}
	}
	return 0
}

// boundedCount accepts a purely numeric token within the sane 0..20 range.
func boundedCount(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if !IsNumericToken(tok) {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > MaxServiceCount {
		return 0, false
	}
	return n, true
}
