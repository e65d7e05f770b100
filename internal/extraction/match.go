package extraction

import (
	"regexp"
	"strings"
)

// Default similarity thresholds used by field extractors. Free-text labels
// tolerate more OCR damage than the short service-count labels.
const (
	FuzzyThresholdDefault = 0.6
	FuzzyThresholdStrict  = 0.75
)

var reWordPunct = regexp.MustCompile(`[^a-z0-9 ]+`)

// glyph confusions that OCR engines introduce on label text
var glyphFolds = strings.NewReplacer("0", "o", "1", "l", "5", "s")

// Matcher runs the four lookup strategies over one normalized fragment
// sequence. All lookups take a starting offset so repeated calls can scan
// forward without re-matching earlier content.
type Matcher struct {
	tokens []string
}

func NewMatcher(tokens []string) *Matcher {
	return &Matcher{tokens: tokens}
}

func (m *Matcher) Len() int { return len(m.tokens) }

// Token returns the fragment at i, or "" when i is out of range.
func (m *Matcher) Token(i int) string {
	if i < 0 || i >= len(m.tokens) {
		return ""
	}
	return m.tokens[i]
}

// Tokens returns the underlying fragment slice. Callers must not mutate it.
func (m *Matcher) Tokens() []string { return m.tokens }

// FindExact returns the index of the first fragment at or after from that
// equals label case-insensitively, or -1.
func (m *Matcher) FindExact(label string, from int) int {
	want := strings.ToLower(strings.TrimSpace(label))
	for i := max(from, 0); i < len(m.tokens); i++ {
		if strings.ToLower(strings.TrimSpace(m.tokens[i])) == want {
			return i
		}
	}
	return -1
}

// FindFuzzy returns the index of the first fragment at or after from whose
// word-set similarity with label is at least threshold, or -1.
func (m *Matcher) FindFuzzy(label string, from int, threshold float64) int {
	for i := max(from, 0); i < len(m.tokens); i++ {
		if Similarity(m.tokens[i], label) >= threshold {
			return i
		}
	}
	return -1
}

// FindContaining returns the index of the first fragment at or after from
// that contains label, or is contained by it, after case and punctuation
// normalization. Returns -1 when nothing matches.
func (m *Matcher) FindContaining(label string, from int) int {
	want := foldText(label)
	if want == "" {
		return -1
	}
	for i := max(from, 0); i < len(m.tokens); i++ {
		got := foldText(m.tokens[i])
		if got == "" {
			continue
		}
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return i
		}
	}
	return -1
}

// FindNearby scans a bounded window of radius tokens around anchor (anchor
// itself excluded, forward side first) for a fragment satisfying pred.
func (m *Matcher) FindNearby(anchor, radius int, pred func(string) bool) int {
	for d := 1; d <= radius; d++ {
		if i := anchor + d; i < len(m.tokens) && pred(m.tokens[i]) {
			return i
		}
		if i := anchor - d; i >= 0 && pred(m.tokens[i]) {
			return i
		}
	}
	return -1
}

// Similarity is the intersection-over-union of the two fragments' normalized
// word sets. It is symmetric, and 1.0 for identical fragments.
func Similarity(a, b string) float64 {
	wa := wordSet(a)
	wb := wordSet(b)
	if len(wa) == 0 && len(wb) == 0 {
		return 1.0
	}
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	inter := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			inter++
		}
	}
	union := len(wa) + len(wb) - inter
	return float64(inter) / float64(union)
}

// foldText lowercases, folds confusable glyphs, strips punctuation and
// squeezes whitespace so "Te1kom:" and "Telkom" compare equal. Word spacing
// survives the fold; concatenated label forms are handled by the variant
// tables, not here.
func foldText(s string) string {
	s = glyphFolds.Replace(strings.ToLower(s))
	s = reWordPunct.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

func wordSet(s string) map[string]struct{} {
	s = glyphFolds.Replace(strings.ToLower(s))
	s = reWordPunct.ReplaceAllString(s, " ")
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}
