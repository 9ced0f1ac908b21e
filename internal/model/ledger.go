package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single row in transactions.csv (one ingested dividend).
type LedgerEntry struct {
	ID          string // "YYYY-MM-NNN"
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	RecordedAt  time.Time
}

// MonthKey returns the "YYYY-MM" rollup key for the entry's payment date.
func (e LedgerEntry) MonthKey() string {
	return e.Date.Format("2006-01")
}

// Ledger is the per-account aggregate of dividend totals, recovery status,
// and the ingested transaction log. The zero value is a freshly created
// ledger: nothing ingested, no investment set.
type Ledger struct {
	InitialInvestment  decimal.Decimal
	TotalDividends     decimal.Decimal
	PrincipalRecovered bool
	RecoveryDate       *time.Time // nil until recovery first triggers
	PostRecoveryGains  decimal.Decimal
	MonthlyTotals      map[string]decimal.Decimal // "YYYY-MM" -> sum
	Entries            []LedgerEntry              // insertion order, not date order
	UpdatedAt          time.Time
}
