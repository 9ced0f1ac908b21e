package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2025-08-001", Format(2025, 8, 1))
	assert.Equal(t, "2024-12-042", Format(2024, 12, 42))
	assert.Equal(t, "2025-01-100", Format(2025, 1, 100))
}

func TestParse(t *testing.T) {
	year, month, seq, err := Parse("2025-08-017")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 8, month)
	assert.Equal(t, 17, seq)
}

func TestParseInvalid(t *testing.T) {
	_, _, _, err := Parse("nonsense")
	assert.Error(t, err)

	_, _, _, err = Parse("2025-08")
	assert.Error(t, err)

	_, _, _, err = Parse("2025-xx-001")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	id := Format(2025, 3, 7)
	year, month, seq, err := Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, Format(year, month, seq))
}

func TestMaxSeqs(t *testing.T) {
	seqs := MaxSeqs([]string{
		"2025-01-001",
		"2025-01-003",
		"2025-02-002",
		"garbage",
		"2025-01-002",
	})

	assert.Equal(t, 3, seqs["2025-01"])
	assert.Equal(t, 2, seqs["2025-02"])
	assert.Zero(t, seqs["2025-03"])
}
