package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Indonesian month names and their common 3-4 letter OCR abbreviations.
var monthNames = map[string]time.Month{
	"januari": time.January, "jan": time.January,
	"februari": time.February, "feb": time.February, "peb": time.February,
	"maret": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"mei":  time.May,
	"juni": time.June, "jun": time.June,
	"juli": time.July, "jul": time.July,
	"agustus": time.August, "agu": time.August, "ags": time.August, "agt": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"oktober": time.October, "okt": time.October,
	"november": time.November, "nov": time.November, "nop": time.November,
	"desember": time.December, "des": time.December,
}

var (
	reDateISO      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDateDMY      = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	reDateSpaced   = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)
	reDateConcat   = regexp.MustCompile(`^(\d{1,2})([A-Za-z]+)(\d{4})$`)
	reDateHalfGlue = regexp.MustCompile(`^(\d{1,2})([A-Za-z]+)\s+(\d{4})$`)
)

// ParseDate parses the date surface forms that appear in scanned contracts,
// trying each pattern in order and stopping at the first match: ISO
// YYYY-MM-DD, DD-MM-YYYY (dash or slash), "23 Februari 2027",
// "23Februari2027", and the half-glued "23Februari 2027". The result is a
// date-only midnight UTC value. Unparsable input reports ok=false, never an
// error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := reDateISO.FindStringSubmatch(s); m != nil {
		return makeDate(m[3], atoiMonth(m[2]), m[1])
	}
	if m := reDateDMY.FindStringSubmatch(s); m != nil {
		return makeDate(m[1], atoiMonth(m[2]), m[3])
	}
	for _, re := range []*regexp.Regexp{reDateSpaced, reDateConcat, reDateHalfGlue} {
		if m := re.FindStringSubmatch(s); m != nil {
			month, ok := monthNames[strings.ToLower(m[2])]
			if !ok {
				continue
			}
			return makeDate(m[1], month, m[3])
		}
	}
	return time.Time{}, false
}

func atoiMonth(s string) time.Month {
	n, _ := strconv.Atoi(s)
	return time.Month(n)
}

func makeDate(dayStr string, month time.Month, yearStr string) (time.Time, bool) {
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// reject rollover like 31 Februari
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

var reDateInText = regexp.MustCompile(
	`\d{4}-\d{1,2}-\d{1,2}|\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{1,2}\s*[A-Za-z]{3,9}\s*\d{4}`)

// DatesIn scans free text for embedded date expressions, parsing each
// candidate through the same ladder as ParseDate. Candidates that fail to
// parse are skipped.
func DatesIn(s string) []time.Time {
	var out []time.Time
	for _, cand := range reDateInText.FindAllString(s, -1) {
		if t, ok := ParseDate(strings.TrimSpace(cand)); ok {
			out = append(out, t)
			continue
		}
		if t, ok := ParseDate(respaceDate(cand)); ok {
			out = append(out, t)
		}
	}
	return out
}

var reConcatParts = regexp.MustCompile(`^(\d{1,2})\s*([A-Za-z]+)\s*(\d{4})$`)

// respaceDate reconstructs "23 Februari 2027" from an OCR-concatenated
// "23Februari2027" so the spaced pattern can take another try.
func respaceDate(s string) string {
	m := reConcatParts.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	return m[1] + " " + m[2] + " " + m[3]
}
