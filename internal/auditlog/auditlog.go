package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one row in the import log: what one ingestion run did.
type Entry struct {
	Timestamp    time.Time
	Account      string
	File         string
	Scanned      int
	Imported     int
	SkippedRows  int
	SkippedDates int
	NetAdded     decimal.Decimal
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,account,file,scanned,imported,skipped_rows,skipped_dates,net_added"

const (
	numFields       = 8
	logDir          = "logs"
	logFile         = "logs/import-log.csv"
	colTimestamp    = 0
	colAccount      = 1
	colFile         = 2
	colScanned      = 3
	colImported     = 4
	colSkippedRows  = 5
	colSkippedDates = 6
	colNetAdded     = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAccount] = e.Account
	row[colFile] = e.File
	row[colScanned] = strconv.Itoa(e.Scanned)
	row[colImported] = strconv.Itoa(e.Imported)
	row[colSkippedRows] = strconv.Itoa(e.SkippedRows)
	row[colSkippedDates] = strconv.Itoa(e.SkippedDates)
	row[colNetAdded] = e.NetAdded.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colScanned, colImported, colSkippedRows, colSkippedDates} {
		counts[i], err = strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
	}

	netAdded, err := decimal.NewFromString(record[colNetAdded])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing net_added %q: %w", record[colNetAdded], err)
	}

	return Entry{
		Timestamp:    ts,
		Account:      record[colAccount],
		File:         record[colFile],
		Scanned:      counts[0],
		Imported:     counts[1],
		SkippedRows:  counts[2],
		SkippedDates: counts[3],
		NetAdded:     netAdded,
	}, nil
}

// Append writes entries to <root>/logs/import-log.csv, creating the file
// and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/import-log.csv. Returns nil if
// the file does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
