package extraction

import (
	"regexp"
	"strings"
	"time"
)

// Scoring weights for the date-pair fallback. A 30-day..5-year window is a
// plausible contract duration; a pair within two days of each other is far
// more likely a pair of signature dates.
const (
	maxValidityDates       = 10 // cap collected dates, extraction stays cheap
	scorePlausibleDuration = 50
	scoreSignatureDuration = -100
	scoreNearbyMax         = 20
	scoreEarlyDocument     = 10

	minContractDuration = 30 * 24 * time.Hour
	maxContractDuration = 5 * 365 * 24 * time.Hour
	signatureDuration   = 2 * 24 * time.Hour
)

var validitySectionHeaders = []string{
	"JANGKA WAKTU",
	"MASA BERLAKU",
	"JANGKA WAKTU KONTRAK",
}

// Separators demand surrounding whitespace so a short one like "to" can only
// match as a standalone word, never inside a month name ("Oktober").
var reValidityDirect = []*regexp.Regexp{
	regexp.MustCompile(`(?i)berlaku\s*(?:sejak|mulai|dari|terhitung)?\s*(?:tanggal)?\s*:?\s*(.+?)\s+(?:s\.?d\.?|sampai\s+dengan|sampai|hingga|until|to)\s+(?:tanggal)?\s*:?\s*(.+)`),
	regexp.MustCompile(`(?i)terhitung\s*(?:sejak|mulai)?\s*(?:tanggal)?\s*:?\s*(.+?)\s+(?:s\.?d\.?|sampai\s+dengan|sampai|hingga)\s+(?:tanggal)?\s*:?\s*(.+)`),
}

// extractValidity recovers the contract validity window. Primary: a direct
// "berlaku <date> sampai <date>" phrase search across raw fragments,
// accepting both spaced and OCR-concatenated date forms. Fallback: the same
// search restricted to the validity-period section. Final fallback: score
// every chronologically ordered pair of dates found in the document and take
// the most plausible one.
func extractValidity(m *Matcher) *ValidityPeriod {
	if vp := directValiditySearch(m, 0, m.Len()); vp != nil {
		return vp
	}
	for _, header := range validitySectionHeaders {
		idx := m.FindContaining(header, 0)
		if idx < 0 {
			continue
		}
		if vp := directValiditySearch(m, idx, m.Len()); vp != nil {
			return vp
		}
		break
	}
	return scoredDatePair(m)
}

func directValiditySearch(m *Matcher, from, to int) *ValidityPeriod {
	for i := from; i < to; i++ {
		tok := m.Token(i)
		for _, re := range reValidityDirect {
			match := re.FindStringSubmatch(tok)
			if match == nil {
				continue
			}
			start, okS := parseDateLoose(match[1])
			end, okE := parseDateLoose(match[2])
			if !okS && !okE {
				continue
			}
			vp := &ValidityPeriod{}
			if okS {
				vp.StartDate = &start
			}
			if okE {
				vp.EndDate = &end
			}
			return vp
		}
	}
	return nil
}

// parseDateLoose parses a phrase side as a date, retrying with a respaced
// form when the raw text was concatenated by OCR, then falling back to the
// first embedded date expression.
func parseDateLoose(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.Trim(s, ".,;:"))
	if t, ok := ParseDate(s); ok {
		return t, true
	}
	if t, ok := ParseDate(respaceDate(s)); ok {
		return t, true
	}
	if dates := DatesIn(s); len(dates) > 0 {
		return dates[0], true
	}
	return time.Time{}, false
}

type datedToken struct {
	date time.Time
	pos  int
}

// scoredDatePair collects every parseable date in the document (capped) and
// scores chronologically ordered pairs by duration plausibility, textual
// proximity and early document position.
func scoredDatePair(m *Matcher) *ValidityPeriod {
	var found []datedToken
	for i := 0; i < m.Len() && len(found) < maxValidityDates; i++ {
		for _, d := range DatesIn(m.Token(i)) {
			found = append(found, datedToken{date: d, pos: i})
			if len(found) == maxValidityDates {
				break
			}
		}
	}
	if len(found) < 2 {
		return nil
	}

	bestScore := 0
	var best *ValidityPeriod
	for i := 0; i < len(found); i++ {
		for j := 0; j < len(found); j++ {
			if i == j || !found[i].date.Before(found[j].date) {
				continue
			}
			score := scorePair(found[i], found[j], m.Len())
			if score > bestScore {
				bestScore = score
				s, e := found[i].date, found[j].date
				best = &ValidityPeriod{StartDate: &s, EndDate: &e}
			}
		}
	}
	if best != nil {
		return best
	}

	// first pair at least 30 days apart in document order
	for i := 0; i < len(found); i++ {
		for j := i + 1; j < len(found); j++ {
			if delta := found[j].date.Sub(found[i].date); delta >= minContractDuration {
				s, e := found[i].date, found[j].date
				return &ValidityPeriod{StartDate: &s, EndDate: &e}
			}
		}
	}

	// first two distinct dates in document order
	for i := 1; i < len(found); i++ {
		if !found[i].date.Equal(found[0].date) {
			s, e := found[0].date, found[i].date
			if e.Before(s) {
				s, e = e, s
			}
			return &ValidityPeriod{StartDate: &s, EndDate: &e}
		}
	}
	return nil
}

func scorePair(start, end datedToken, docLen int) int {
	score := 0
	duration := end.date.Sub(start.date)
	switch {
	case duration <= signatureDuration:
		score += scoreSignatureDuration
	case duration >= minContractDuration && duration <= maxContractDuration:
		score += scorePlausibleDuration
	}

	gap := start.pos - end.pos
	if gap < 0 {
		gap = -gap
	}
	if gap < scoreNearbyMax {
		score += scoreNearbyMax - gap
	}

	if docLen > 0 && min(start.pos, end.pos) < docLen/3 {
		score += scoreEarlyDocument
	}
	return score
}
