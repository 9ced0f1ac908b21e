package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(file string) Entry {
	net, _ := decimal.NewFromString("1254.40")
	return Entry{
		Timestamp:    time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC),
		Account:      "main",
		File:         file,
		Scanned:      7,
		Imported:     3,
		SkippedRows:  2,
		SkippedDates: 0,
		NetAdded:     net,
	}
}

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, Append(root, []Entry{sampleEntry("jan.csv")}))
	require.NoError(t, Append(root, []Entry{sampleEntry("feb.csv")}))

	got, err := Read(root)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "jan.csv", got[0].File)
	assert.Equal(t, "feb.csv", got[1].File)
	assert.Equal(t, 7, got[0].Scanned)
	assert.Equal(t, 3, got[0].Imported)
	assert.Equal(t, 2, got[0].SkippedRows)
	assert.Equal(t, "1254.40", got[0].NetAdded.StringFixed(2))

	// Header written exactly once.
	data, err := os.ReadFile(filepath.Join(root, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,"))
}

func TestReadMissing(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	row := MarshalEntry(sampleEntry("jan.csv"))
	row[colScanned] = "many"
	_, err := UnmarshalEntry(row)
	assert.Error(t, err)
}
