package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reRpPrefix     = regexp.MustCompile(`(?i)^rp\.?\s*`)
	reAmountBody   = regexp.MustCompile(`^[0-9][0-9.,]*$`)
	reThousandDots = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{3})+$`)
	reAmountInText = regexp.MustCompile(`(?i)rp\.?\s*([0-9][0-9.]*(?:,[0-9]+)?)`)
	reNumericOnly  = regexp.MustCompile(`^[0-9]+$`)
	reAmountToken  = regexp.MustCompile(`(?i)^rp\.?\s*[0-9][0-9.,]*[.,-]*$`)
)

// ParseAmount converts an Indonesian-locale currency token into an exact
// decimal. Grouping is disambiguated deterministically: one comma with at
// least one dot means dots group thousands and the comma is the decimal
// point; two or more dots with no comma means all dots group thousands.
// Unparsable input yields zero, never an error.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = reRpPrefix.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "")
	// trailing punctuation like "640.-" or "200," is decoration, not digits
	s = strings.TrimRight(s, ".,-")
	if s == "" || !reAmountBody.MatchString(s) {
		return decimal.Zero
	}

	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")
	switch {
	case commas == 1 && dots >= 1:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case dots >= 2 && commas == 0:
		s = strings.ReplaceAll(s, ".", "")
	default:
		s = strings.ReplaceAll(s, ",", "")
		if reThousandDots.MatchString(s) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IsNumericToken reports whether the token is purely digits.
func IsNumericToken(s string) bool {
	return reNumericOnly.MatchString(strings.TrimSpace(s))
}

// LooksLikeAmount reports whether a token plausibly carries a currency value:
// an Rp-prefixed number, a dot-grouped number, or a bare run of 4+ digits.
func LooksLikeAmount(s string) bool {
	s = strings.TrimSpace(s)
	if reAmountToken.MatchString(s) {
		return true
	}
	body := strings.TrimRight(s, ".,-")
	if reThousandDots.MatchString(body) {
		return true
	}
	return reNumericOnly.MatchString(body) && len(body) >= 4
}

// AmountsIn extracts every Rp-prefixed amount appearing inside a longer
// fragment, in order of appearance.
func AmountsIn(s string) []decimal.Decimal {
	matches := reAmountInText.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		out = append(out, ParseAmount(m[1]))
	}
	return out
}
