package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reTerminPeriod = regexp.MustCompile(`(?i)periode\s*([A-Za-z]+\s*\d{4})`)
	reTerminShort  = regexp.MustCompile(`(?i)termin\s*(\d+)\s*x?`)
)

// extractTermin recovers the termin installment schedule. The primary
// strategy pattern-matches "Termin-N, yaitu periode <Month Year> ... Rp<amt>"
// fragments anywhere in the payment section, one installment per match,
// sorted by sequence number, with the total equal to the exact sum of the
// matched amounts.
//
// When the primary finds nothing but a termin count is still recoverable
// from a shorter pattern like "Termin4X", the schedule is auto-generated by
// splitting totalCost evenly across the count. Downstream billing needs a
// schedule even when OCR lost the per-period amounts; every synthesized
// installment is marked "(auto-generated)" in its source text so it is never
// mistaken for recognized data.
func extractTermin(m *Matcher, totalCost decimal.Decimal) ([]TerminInstallment, int, decimal.Decimal) {
	secStart, secEnd, _ := paymentSection(m)

	var installments []TerminInstallment
	for i := secStart; i < secEnd; i++ {
		tok := m.Token(i)
		seqMatch := reTerminNumbered.FindStringSubmatch(tok)
		if seqMatch == nil {
			continue
		}
		amts := AmountsIn(tok)
		if len(amts) == 0 || !amts[0].IsPositive() {
			continue
		}
		seq, err := strconv.Atoi(seqMatch[1])
		if err != nil || seq < 1 {
			continue
		}
		period := ""
		if pm := reTerminPeriod.FindStringSubmatch(tok); pm != nil {
			period = pm[1]
		}
		installments = append(installments, TerminInstallment{
			Sequence:   seq,
			Period:     period,
			Amount:     amts[0],
			SourceText: tok,
		})
	}

	if len(installments) > 0 {
		sort.Slice(installments, func(a, b int) bool {
			return installments[a].Sequence < installments[b].Sequence
		})
		total := decimal.Zero
		for _, ins := range installments {
			total = total.Add(ins.Amount)
		}
		return installments, len(installments), total
	}

	// fallback: recover only the count, synthesize an even split
	for i := secStart; i < secEnd; i++ {
		sm := reTerminShort.FindStringSubmatch(m.Token(i))
		if sm == nil {
			continue
		}
		count, err := strconv.Atoi(sm[1])
		if err != nil || count < 1 || count > 60 {
			continue
		}
		gen := GenerateTerminSchedule(count, totalCost)
		return gen, count, totalCost
	}

	return nil, 0, decimal.Zero
}

// GenerateTerminSchedule splits total evenly across count generic periods.
// The last installment absorbs the rounding remainder so the schedule sums
// exactly to total. Every entry is flagged as synthesized.
func GenerateTerminSchedule(count int, total decimal.Decimal) []TerminInstallment {
	if count < 1 {
		return nil
	}
	per := total.DivRound(decimal.NewFromInt(int64(count)), 2)
	out := make([]TerminInstallment, 0, count)
	running := decimal.Zero
	for i := 1; i <= count; i++ {
		amt := per
		if i == count {
			amt = total.Sub(running)
		}
		running = running.Add(amt)
		out = append(out, TerminInstallment{
			Sequence:   i,
			Period:     fmt.Sprintf("Termin %d", i),
			Amount:     amt,
			SourceText: fmt.Sprintf("Termin %d (auto-generated)", i),
		})
	}
	return out
}

// Synthesized reports whether the installment was auto-generated from a bare
// count rather than read off the document.
func (t TerminInstallment) Synthesized() bool {
	return strings.Contains(t.SourceText, "(auto-generated)")
}
