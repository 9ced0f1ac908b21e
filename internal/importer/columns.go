package importer

import (
	"fmt"
	"strings"
)

// Role names used in diagnostics.
const (
	roleDate        = "date"
	roleDescription = "description"
	roleAmount      = "amount"
	roleInstrument  = "instrument"
)

// Ordered candidate header names per role. Matching is case-sensitive,
// exact, first candidate wins. New export variants are supported by
// extending a table, not by editing the scan.
var (
	dateColumns        = []string{"Date", "date", "Date/Time", "date/time", "Activity Date", "Process Date", "Settle Date"}
	descriptionColumns = []string{"Description", "description", "Details", "details"}
	amountColumns      = []string{"Amount", "amount", "Net Amount", "net amount"}
	instrumentColumns  = []string{"Instrument", "instrument", "Symbol", "symbol", "Security", "security"}
)

// ColumnMappingError reports that one or more required columns could not be
// identified in the header row. It carries everything a user needs to
// diagnose an unexpected export format.
type ColumnMappingError struct {
	Missing    []string            // roles with no matching header
	Available  []string            // headers actually present (after truncation)
	Candidates map[string][]string // role -> candidate names searched
}

func (e *ColumnMappingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "could not identify %s column(s); available columns: [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
	for _, role := range e.Missing {
		fmt.Fprintf(&b, "; looked for %s in [%s]", role, strings.Join(e.Candidates[role], ", "))
	}
	return b.String()
}

// columnMap holds the discovered index per role. instrument is optional and
// -1 when absent.
type columnMap struct {
	date        int
	description int
	amount      int
	instrument  int
}

// mapColumns discovers the role indexes in a header row, or fails with a
// *ColumnMappingError naming the missing roles.
func mapColumns(header []string) (columnMap, error) {
	m := columnMap{
		date:        findColumn(header, dateColumns),
		description: findColumn(header, descriptionColumns),
		amount:      findColumn(header, amountColumns),
		instrument:  findColumn(header, instrumentColumns),
	}

	var missing []string
	if m.date < 0 {
		missing = append(missing, roleDate)
	}
	if m.description < 0 {
		missing = append(missing, roleDescription)
	}
	if m.amount < 0 {
		missing = append(missing, roleAmount)
	}
	if len(missing) > 0 {
		return columnMap{}, &ColumnMappingError{
			Missing:   missing,
			Available: append([]string(nil), header...),
			Candidates: map[string][]string{
				roleDate:        dateColumns,
				roleDescription: descriptionColumns,
				roleAmount:      amountColumns,
			},
		}
	}
	return m, nil
}

// findColumn returns the index of the first candidate present in the header,
// searched in candidate order, or -1.
func findColumn(header, candidates []string) int {
	for _, want := range candidates {
		for i, h := range header {
			if h == want {
				return i
			}
		}
	}
	return -1
}
