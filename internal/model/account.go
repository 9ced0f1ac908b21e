package model

import "time"

// Account is a tracked brokerage account in accounts.csv. Name doubles as
// the ledger directory name under the data root.
type Account struct {
	Name   string
	Broker string
	Opened time.Time // zero if unknown
	Notes  string
}
