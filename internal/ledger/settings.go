package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/recoup-dev/recoup/internal/model"
)

// ErrNegativeInvestment rejects a settings update before any mutation.
var ErrNegativeInvestment = errors.New("initial investment cannot be negative")

// SetInitialInvestment updates the invested principal and recomputes the
// recovery state from scratch against the current running total. Unlike
// ingestion, this path can both set and clear recovery: raising the
// investment above the total un-recovers the ledger. The recovery date is
// preserved while the ledger stays recovered, cleared when it un-recovers,
// and stamped fresh only on a false-to-true transition.
func SetInitialInvestment(l *model.Ledger, amount decimal.Decimal, now time.Time) error {
	if amount.IsNegative() {
		return ErrNegativeInvestment
	}

	l.InitialInvestment = amount
	if l.TotalDividends.GreaterThanOrEqual(amount) {
		l.PrincipalRecovered = true
		if l.RecoveryDate == nil {
			t := now
			l.RecoveryDate = &t
		}
		l.PostRecoveryGains = l.TotalDividends.Sub(amount)
	} else {
		l.PrincipalRecovered = false
		l.RecoveryDate = nil
		l.PostRecoveryGains = decimal.Zero
	}
	l.UpdatedAt = now
	return nil
}

// Reset zeroes the ledger: investment, totals, recovery state, monthly
// rollup, and the transaction log. Without confirm it is a no-op and
// reports false.
func Reset(l *model.Ledger, confirm bool, now time.Time) bool {
	if !confirm {
		return false
	}
	*l = model.Ledger{UpdatedAt: now}
	return true
}

// Progress returns the percent of principal recovered so far, capped at
// 100. Zero when no investment is set.
func Progress(l *model.Ledger) decimal.Decimal {
	if !l.InitialInvestment.IsPositive() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	pct := l.TotalDividends.Div(l.InitialInvestment).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
