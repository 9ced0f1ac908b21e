package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DividendTransaction represents a dividend row extracted from a brokerage
// CSV export. Date carries the raw cell text; the ledger accumulator owns
// date parsing and its drop-on-failure policy.
type DividendTransaction struct {
	Date        string
	Description string
	Amount      decimal.Decimal // always positive
	RecordedAt  time.Time       // ingestion time, not the payment date
}
