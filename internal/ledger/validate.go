package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/recoup-dev/recoup/internal/model"
)

// ValidationError describes a single ledger consistency violation.
type ValidationError struct {
	Check       int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("check %d: %s", e.Check, e.Description)
}

// Verify enforces 4 consistency checks on a loaded ledger:
//
//	1: every entry amount is positive
//	2: the running total equals the sum of all entries
//	3: the monthly rollup matches the entries, in both directions
//	4: the recovery fields are mutually consistent
func Verify(l *model.Ledger) []ValidationError {
	var errs []ValidationError

	// Check 1: entries are strictly positive inflows.
	for _, e := range l.Entries {
		if !e.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Check:       1,
				Description: fmt.Sprintf("entry %s has non-positive amount %s", e.ID, e.Amount),
			})
		}
	}

	// Check 2: total equals the entry sum.
	sum := decimal.Zero
	for _, e := range l.Entries {
		sum = sum.Add(e.Amount)
	}
	if !l.TotalDividends.Equal(sum) {
		errs = append(errs, ValidationError{
			Check:       2,
			Description: fmt.Sprintf("total dividends %s != entry sum %s", l.TotalDividends, sum),
		})
	}

	// Check 3: monthly rollup matches entries.
	rollup := make(map[string]decimal.Decimal)
	for _, e := range l.Entries {
		key := e.MonthKey()
		rollup[key] = rollup[key].Add(e.Amount)
	}
	for key, want := range rollup {
		got, ok := l.MonthlyTotals[key]
		if !ok || !got.Equal(want) {
			errs = append(errs, ValidationError{
				Check:       3,
				Description: fmt.Sprintf("month %s: rollup has %s, entries sum to %s", key, got, want),
			})
		}
	}
	for key := range l.MonthlyTotals {
		if _, ok := rollup[key]; !ok {
			errs = append(errs, ValidationError{
				Check:       3,
				Description: fmt.Sprintf("month %s present in rollup but has no entries", key),
			})
		}
	}

	// Check 4: recovery fields hang together.
	if l.PrincipalRecovered {
		if l.RecoveryDate == nil {
			errs = append(errs, ValidationError{
				Check:       4,
				Description: "recovered ledger has no recovery date",
			})
		}
		if l.TotalDividends.LessThan(l.InitialInvestment) {
			errs = append(errs, ValidationError{
				Check:       4,
				Description: "recovered ledger has total below initial investment",
			})
		}
		want := l.TotalDividends.Sub(l.InitialInvestment)
		if !l.PostRecoveryGains.Equal(want) {
			errs = append(errs, ValidationError{
				Check:       4,
				Description: fmt.Sprintf("post-recovery gains %s != %s", l.PostRecoveryGains, want),
			})
		}
	} else {
		if l.RecoveryDate != nil {
			errs = append(errs, ValidationError{
				Check:       4,
				Description: "unrecovered ledger has a recovery date",
			})
		}
		if !l.PostRecoveryGains.IsZero() {
			errs = append(errs, ValidationError{
				Check:       4,
				Description: fmt.Sprintf("unrecovered ledger has gains %s", l.PostRecoveryGains),
			})
		}
	}

	return errs
}
