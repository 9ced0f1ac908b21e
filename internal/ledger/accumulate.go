package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/recoup-dev/recoup/internal/id"
	"github.com/recoup-dev/recoup/internal/model"
)

// dateFormats are tried in order; the first layout that parses wins. A date
// matching none of them drops the transaction silently (counted, never
// raised): best-effort ingestion for noisy export formats.
var dateFormats = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-01-02",
	"1/2/06",
	"1-2-06",
}

// Result reports what one Apply call did to the ledger.
type Result struct {
	NetAdded     decimal.Decimal
	Applied      int
	SkippedDates int
}

// ParseDate parses a transaction date against the accepted format list.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Apply folds one ingestion batch into the ledger: appends entries, updates
// the running total and the monthly rollup, then recomputes recovery once
// for the whole batch. Transactions whose date cannot be parsed are dropped
// and counted; their amounts never reach any total.
func Apply(l *model.Ledger, txns []model.DividendTransaction, now time.Time) Result {
	res := Result{NetAdded: decimal.Zero}

	seqs := maxSeqs(l.Entries)
	for _, txn := range txns {
		date, ok := ParseDate(txn.Date)
		if !ok {
			res.SkippedDates++
			continue
		}

		monthKey := date.Format("2006-01")
		seqs[monthKey]++
		entry := model.LedgerEntry{
			ID:          id.Format(date.Year(), int(date.Month()), seqs[monthKey]),
			Date:        date,
			Description: txn.Description,
			Amount:      txn.Amount,
			RecordedAt:  txn.RecordedAt,
		}
		l.Entries = append(l.Entries, entry)

		l.TotalDividends = l.TotalDividends.Add(txn.Amount)
		if l.MonthlyTotals == nil {
			l.MonthlyTotals = make(map[string]decimal.Decimal)
		}
		l.MonthlyTotals[monthKey] = l.MonthlyTotals[monthKey].Add(txn.Amount)

		res.NetAdded = res.NetAdded.Add(txn.Amount)
		res.Applied++
	}

	recomputeRecovery(l, now)
	l.UpdatedAt = now
	return res
}

// recomputeRecovery evaluates the recovery state after a batch has been
// folded in. Crossing the threshold is a one-way transition on this path;
// once recovered, only the gains figure is refreshed. A zero initial
// investment is vacuously recovered as soon as anything lands.
func recomputeRecovery(l *model.Ledger, now time.Time) {
	switch {
	case !l.PrincipalRecovered && l.TotalDividends.GreaterThanOrEqual(l.InitialInvestment):
		l.PrincipalRecovered = true
		t := now
		l.RecoveryDate = &t
		l.PostRecoveryGains = l.TotalDividends.Sub(l.InitialInvestment)
	case l.PrincipalRecovered:
		l.PostRecoveryGains = l.TotalDividends.Sub(l.InitialInvestment)
	}
}

// maxSeqs returns the highest used ID sequence per month key.
func maxSeqs(entries []model.LedgerEntry) map[string]int {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return id.MaxSeqs(ids)
}
