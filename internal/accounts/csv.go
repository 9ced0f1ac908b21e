package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/recoup-dev/recoup/internal/model"
)

// Header is the CSV header for accounts.csv.
const Header = "name,broker,opened,notes"

const (
	numFields  = 4
	dateFormat = "2006-01-02"
	colName    = 0
	colBroker  = 1
	colOpened  = 2
	colNotes   = 3
)

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, numFields)
	row[colName] = a.Name
	row[colBroker] = a.Broker
	if !a.Opened.IsZero() {
		row[colOpened] = a.Opened.Format(dateFormat)
	}
	row[colNotes] = a.Notes
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var opened time.Time
	if record[colOpened] != "" {
		var err error
		opened, err = time.Parse(dateFormat, record[colOpened])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing opened %q: %w", record[colOpened], err)
		}
	}

	return model.Account{
		Name:   record[colName],
		Broker: record[colBroker],
		Opened: opened,
		Notes:  record[colNotes],
	}, nil
}

// ReadAccounts reads all accounts from an accounts.csv reader.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var accts []model.Account
	for i, rec := range records[1:] {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accts = append(accts, a)
	}
	return accts, nil
}

// WriteAccounts writes accounts to an accounts.csv writer (with header).
func WriteAccounts(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range accts {
		if err := cw.Write(MarshalAccount(a)); err != nil {
			return fmt.Errorf("writing account %d: %w", i, err)
		}
	}
	return cw.Error()
}
