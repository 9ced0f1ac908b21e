package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/recoup-dev/recoup/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,description,amount,recorded_at"

const (
	numFields     = 5
	dateFormat    = "2006-01-02"
	colID         = 0
	colDate       = 1
	colDesc       = 2
	colAmount     = 3
	colRecordedAt = 4
)

// MarshalEntry converts a LedgerEntry to a CSV row.
func MarshalEntry(e model.LedgerEntry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colDate] = e.Date.Format(dateFormat)
	row[colDesc] = e.Description
	row[colAmount] = e.Amount.String()
	if !e.RecordedAt.IsZero() {
		row[colRecordedAt] = e.RecordedAt.Format(time.RFC3339)
	}
	return row
}

// UnmarshalEntry converts a CSV row to a LedgerEntry.
func UnmarshalEntry(record []string) (model.LedgerEntry, error) {
	if len(record) != numFields {
		return model.LedgerEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var recordedAt time.Time
	if record[colRecordedAt] != "" {
		recordedAt, err = time.Parse(time.RFC3339, record[colRecordedAt])
		if err != nil {
			return model.LedgerEntry{}, fmt.Errorf("parsing recorded_at %q: %w", record[colRecordedAt], err)
		}
	}

	return model.LedgerEntry{
		ID:          record[colID],
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		RecordedAt:  recordedAt,
	}, nil
}

// ReadEntries reads all entries from a transactions.csv reader.
func ReadEntries(r io.Reader) ([]model.LedgerEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []model.LedgerEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a transactions.csv writer (with header).
func WriteEntries(w io.Writer, entries []model.LedgerEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return cw.Error()
}
