package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recoup-dev/recoup/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleLedger() *model.Ledger {
	recovered := time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC)
	return &model.Ledger{
		InitialInvestment:  dec("1000.00"),
		TotalDividends:     dec("1234.56"),
		PrincipalRecovered: true,
		RecoveryDate:       &recovered,
		PostRecoveryGains:  dec("234.56"),
		MonthlyTotals: map[string]decimal.Decimal{
			"2025-01": dec("1000.00"),
			"2025-02": dec("234.56"),
		},
		Entries: []model.LedgerEntry{
			{
				ID:          "2025-01-001",
				Date:        date(2025, 1, 15),
				Description: "AAPL Dividend - $1000.00",
				Amount:      dec("1000.00"),
				RecordedAt:  time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:          "2025-02-001",
				Date:        date(2025, 2, 14),
				Description: "MSFT Dividend - $234.56",
				Amount:      dec("234.56"),
				RecordedAt:  time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC),
			},
		},
		UpdatedAt: time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewService(t.TempDir())
	want := sampleLedger()

	require.NoError(t, s.Save("main", want))

	got, err := s.Load("main")
	require.NoError(t, err)

	assert.True(t, want.InitialInvestment.Equal(got.InitialInvestment))
	assert.True(t, want.TotalDividends.Equal(got.TotalDividends))
	assert.Equal(t, want.PrincipalRecovered, got.PrincipalRecovered)
	require.NotNil(t, got.RecoveryDate)
	assert.True(t, want.RecoveryDate.Equal(*got.RecoveryDate))
	assert.True(t, want.PostRecoveryGains.Equal(got.PostRecoveryGains))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))

	require.Len(t, got.MonthlyTotals, 2)
	assert.True(t, want.MonthlyTotals["2025-01"].Equal(got.MonthlyTotals["2025-01"]))
	assert.True(t, want.MonthlyTotals["2025-02"].Equal(got.MonthlyTotals["2025-02"]))

	require.Len(t, got.Entries, 2)
	for i := range want.Entries {
		assert.Equal(t, want.Entries[i].ID, got.Entries[i].ID)
		assert.True(t, want.Entries[i].Date.Equal(got.Entries[i].Date))
		assert.Equal(t, want.Entries[i].Description, got.Entries[i].Description)
		assert.True(t, want.Entries[i].Amount.Equal(got.Entries[i].Amount), "amount mismatch row %d", i)
		assert.True(t, want.Entries[i].RecordedAt.Equal(got.Entries[i].RecordedAt))
	}
}

func TestLoadMissingAccountIsZeroLedger(t *testing.T) {
	s := NewService(t.TempDir())

	l, err := s.Load("main")
	require.NoError(t, err)

	assert.True(t, l.InitialInvestment.IsZero())
	assert.True(t, l.TotalDividends.IsZero())
	assert.False(t, l.PrincipalRecovered)
	assert.Nil(t, l.RecoveryDate)
	assert.Empty(t, l.Entries)
	assert.Empty(t, l.MonthlyTotals)
}

func TestLedgerFileFormat(t *testing.T) {
	root := t.TempDir()
	s := NewService(root)
	require.NoError(t, s.Save("main", sampleLedger()))

	data, err := os.ReadFile(filepath.Join(root, "main", "ledger.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "initial_investment: \"1000\"")
	assert.Contains(t, contents, "principal_recovered: true")
	assert.Contains(t, contents, "2025-01: \"1000\"")

	csvData, err := os.ReadFile(filepath.Join(root, "main", "transactions.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csvData), Header))
}

func TestEntriesCSVRoundTrip(t *testing.T) {
	entries := sampleLedger().Entries

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01-001", got[0].ID)
	assert.True(t, got[0].Amount.Equal(dec("1000.00")))
}

func TestUnmarshalEntry_BadRows(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "short"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"2025-01-001", "not-a-date", "desc", "1.00", ""})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"2025-01-001", "2025-01-15", "desc", "abc", ""})
	assert.Error(t, err)

	// Empty recorded_at is tolerated.
	e, err := UnmarshalEntry([]string{"2025-01-001", "2025-01-15", "desc", "1.00", ""})
	require.NoError(t, err)
	assert.True(t, e.RecordedAt.IsZero())
}
