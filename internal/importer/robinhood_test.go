package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobinhoodParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/robinhood_activity.csv")
	require.NoError(t, err)

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 3)
	assert.Equal(t, 7, res.Scanned)
	assert.Equal(t, 2, res.Skipped)

	// Descriptions are rewritten from the instrument column.
	assert.Equal(t, "AAPL Dividend - $12.34", res.Transactions[0].Description)
	assert.Equal(t, "12.34", res.Transactions[0].Amount.StringFixed(2))
	assert.Equal(t, "1/2/2025", res.Transactions[0].Date)

	// Thousands separator and quotes stripped.
	assert.Equal(t, "SCHD Dividend - $1234.56", res.Transactions[1].Description)
	assert.Equal(t, "1234.56", res.Transactions[1].Amount.StringFixed(2))

	assert.Equal(t, "MSFT Dividend - $7.50", res.Transactions[2].Description)

	for _, txn := range res.Transactions {
		assert.True(t, txn.Amount.IsPositive(), "amount must be positive for %s", txn.Description)
		assert.False(t, txn.RecordedAt.IsZero())
	}
}

func TestRobinhoodParser_ColumnDiscovery(t *testing.T) {
	csv := "Activity Date,Details,Net Amount,Symbol\n" +
		"8/1/2025,VTI Distribution,$3.21,VTI\n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "8/1/2025", res.Transactions[0].Date)
	assert.Equal(t, "VTI Dividend - $3.21", res.Transactions[0].Description)
}

func TestRobinhoodParser_MissingColumns(t *testing.T) {
	csv := "Foo,Bar,Baz\n1,2,3\n"

	p := &RobinhoodParser{}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)

	var mapErr *ColumnMappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, []string{"date", "description", "amount"}, mapErr.Missing)
	assert.Equal(t, []string{"Foo", "Bar", "Baz"}, mapErr.Available)
	assert.Contains(t, err.Error(), "Foo, Bar, Baz")
	assert.Contains(t, err.Error(), "Activity Date")
}

func TestRobinhoodParser_TrailingColumnsIgnored(t *testing.T) {
	// An "Amount" header past the ninth column must not win over the
	// in-range "Net Amount".
	csv := "Activity Date,Details,Net Amount,Symbol,C5,C6,C7,C8,C9,Amount\n" +
		"1/2/2025,Cash Dividend,$5.00,KO,x,x,x,x,x,$999.99\n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "5.00", res.Transactions[0].Amount.StringFixed(2))
}

func TestRobinhoodParser_DividendFilter(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"1/2/2025,Cash DIVIDEND,1.00\n" +
		"1/3/2025,Buy AAPL,2.00\n" +
		"1/4/2025,Capital Gains Distribution,3.00\n" +
		"1/5/2025,quarterly div payout,4.00\n" +
		"1/6/2025,Sell MSFT,5.00\n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 3)
	assert.Equal(t, "Cash DIVIDEND", res.Transactions[0].Description)
	assert.Equal(t, "Capital Gains Distribution", res.Transactions[1].Description)
	assert.Equal(t, "quarterly div payout", res.Transactions[2].Description)
}

func TestRobinhoodParser_NoSymbolKeepsDescription(t *testing.T) {
	csv := "Date,Description,Amount\n1/2/2025,SCHD Monthly Dividend,9.99\n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "SCHD Monthly Dividend", res.Transactions[0].Description)
}

func TestRobinhoodParser_AmountNormalization(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"1/2/2025,Dividend A,\"$1,234.56\"\n" +
		"1/3/2025,Dividend B,-5.00\n" +
		"1/4/2025,Dividend C,abc\n" +
		"1/5/2025,Dividend D,0\n" +
		"1/6/2025,Dividend E, $2.50 \n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 2)
	assert.Equal(t, "1234.56", res.Transactions[0].Amount.StringFixed(2))
	assert.Equal(t, "2.50", res.Transactions[1].Amount.StringFixed(2))
	assert.Equal(t, 3, res.Skipped)
}

func TestRobinhoodParser_ShortRowsSkipped(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"1/2/2025\n" +
		"1/3/2025,Cash Dividend,4.00\n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, 1, res.Skipped)
}

func TestRobinhoodParser_EmptyDataIsNotAnError(t *testing.T) {
	csv := "Date,Description,Amount\n1/2/2025,Buy AAPL,-100.00\n"

	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, res.Transactions)
	assert.Equal(t, 1, res.Scanned)
}

func TestRobinhoodParser_HeaderOnly(t *testing.T) {
	p := &RobinhoodParser{}
	res, err := p.Parse(strings.NewReader("Date,Description,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Transactions)
	assert.Zero(t, res.Scanned)
}
