package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/recoup-dev/recoup/internal/model"
)

// RobinhoodParser parses Robinhood account activity CSV exports.
type RobinhoodParser struct{}

// maxColumns is the canonical column count of the export. Some variants
// append extra trailing columns; anything past the ninth is ignored so
// malformed trailing commas cannot corrupt the column mapping.
const maxColumns = 9

// dividendKeywords classify a row as a dividend by case-folded substring
// match. "div" is known to also catch the odd unrelated ticker; accepted
// tolerance in exchange for catching every export wording.
var dividendKeywords = []string{"dividend", "div", "distribution"}

// Format returns the parser name.
func (p *RobinhoodParser) Format() string { return "robinhood" }

// Parse reads an activity CSV and returns the dividend rows it contains.
// Per-row anomalies are skipped and counted, never raised; only a header
// that cannot be mapped to date/description/amount columns is an error.
func (p *RobinhoodParser) Parse(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // export variants disagree on column counts
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return Result{}, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) > maxColumns {
		header = header[:maxColumns]
	}

	cols, err := mapColumns(header)
	if err != nil {
		return Result{}, err
	}

	recordedAt := time.Now().UTC()

	var res Result
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		res.Scanned++
		if err != nil {
			// Structurally broken line.
			res.Skipped++
			continue
		}
		if len(rec) > maxColumns {
			rec = rec[:maxColumns]
		}
		if cols.date >= len(rec) || cols.description >= len(rec) || cols.amount >= len(rec) {
			res.Skipped++
			continue
		}

		desc := rec[cols.description]
		if !isDividend(desc) {
			continue
		}

		amount, ok := normalizeAmount(rec[cols.amount])
		if !ok {
			res.Skipped++
			continue
		}

		if cols.instrument >= 0 && cols.instrument < len(rec) {
			// Synthesized description keeps downstream display consistent.
			desc = fmt.Sprintf("%s Dividend - $%s", rec[cols.instrument], amount.StringFixed(2))
		}

		res.Transactions = append(res.Transactions, model.DividendTransaction{
			Date:        rec[cols.date],
			Description: desc,
			Amount:      amount,
			RecordedAt:  recordedAt,
		})
	}
	return res, nil
}

// isDividend reports whether a description classifies the row as a dividend.
func isDividend(desc string) bool {
	folded := strings.ToLower(desc)
	for _, kw := range dividendKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// normalizeAmount strips currency formatting ("$", thousands separators)
// and parses the cell. ok is false for unparseable or non-positive values:
// dividends are modeled as strictly positive inflows, so reinvestment
// debits and fee offsets are excluded on purpose.
func normalizeAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
