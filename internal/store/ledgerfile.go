package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/recoup-dev/recoup/internal/model"
)

// ledgerFile is the on-disk shape of ledger.yaml. Decimals are stored as
// strings so the file stays exact and diff-friendly under git.
type ledgerFile struct {
	InitialInvestment  string            `yaml:"initial_investment"`
	TotalDividends     string            `yaml:"total_dividends"`
	PrincipalRecovered bool              `yaml:"principal_recovered"`
	RecoveryDate       string            `yaml:"recovery_date,omitempty"`
	PostRecoveryGains  string            `yaml:"post_recovery_gains"`
	MonthlyTotals      map[string]string `yaml:"monthly_totals,omitempty"`
	UpdatedAt          string            `yaml:"updated_at,omitempty"`
}

// marshalLedger renders the ledger aggregates (everything except the entry
// log, which lives in transactions.csv) as YAML.
func marshalLedger(l *model.Ledger) ([]byte, error) {
	lf := ledgerFile{
		InitialInvestment:  l.InitialInvestment.String(),
		TotalDividends:     l.TotalDividends.String(),
		PrincipalRecovered: l.PrincipalRecovered,
		PostRecoveryGains:  l.PostRecoveryGains.String(),
	}
	if l.RecoveryDate != nil {
		lf.RecoveryDate = l.RecoveryDate.Format(time.RFC3339)
	}
	if !l.UpdatedAt.IsZero() {
		lf.UpdatedAt = l.UpdatedAt.Format(time.RFC3339)
	}
	if len(l.MonthlyTotals) > 0 {
		lf.MonthlyTotals = make(map[string]string, len(l.MonthlyTotals))
		for month, amount := range l.MonthlyTotals {
			lf.MonthlyTotals[month] = amount.String()
		}
	}
	return yaml.Marshal(lf)
}

// unmarshalLedger fills the ledger aggregates from YAML. Entries are left
// untouched.
func unmarshalLedger(data []byte, l *model.Ledger) error {
	var lf ledgerFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return fmt.Errorf("parsing ledger file: %w", err)
	}

	var err error
	if l.InitialInvestment, err = parseDecimal(lf.InitialInvestment, "initial_investment"); err != nil {
		return err
	}
	if l.TotalDividends, err = parseDecimal(lf.TotalDividends, "total_dividends"); err != nil {
		return err
	}
	if l.PostRecoveryGains, err = parseDecimal(lf.PostRecoveryGains, "post_recovery_gains"); err != nil {
		return err
	}
	l.PrincipalRecovered = lf.PrincipalRecovered

	l.RecoveryDate = nil
	if lf.RecoveryDate != "" {
		t, err := time.Parse(time.RFC3339, lf.RecoveryDate)
		if err != nil {
			return fmt.Errorf("parsing recovery_date %q: %w", lf.RecoveryDate, err)
		}
		l.RecoveryDate = &t
	}
	if lf.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339, lf.UpdatedAt)
		if err != nil {
			return fmt.Errorf("parsing updated_at %q: %w", lf.UpdatedAt, err)
		}
		l.UpdatedAt = t
	}

	l.MonthlyTotals = nil
	if len(lf.MonthlyTotals) > 0 {
		l.MonthlyTotals = make(map[string]decimal.Decimal, len(lf.MonthlyTotals))
		for month, raw := range lf.MonthlyTotals {
			d, err := parseDecimal(raw, "monthly_totals."+month)
			if err != nil {
				return err
			}
			l.MonthlyTotals[month] = d
		}
	}
	return nil
}

// parseDecimal parses a stored decimal field, treating empty as zero.
func parseDecimal(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s %q: %w", field, raw, err)
	}
	return d, nil
}
