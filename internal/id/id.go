package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns a transaction ID like "2025-08-001".
func Format(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Parse parses "2025-08-001" into year, month, seq.
func Parse(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in transaction ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in transaction ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// MaxSeqs scans existing IDs and returns the highest sequence number seen
// per "YYYY-MM" month key. Unparseable IDs are ignored.
func MaxSeqs(ids []string) map[string]int {
	seqs := make(map[string]int)
	for _, v := range ids {
		year, month, seq, err := Parse(v)
		if err != nil {
			continue
		}
		key := fmt.Sprintf("%04d-%02d", year, month)
		if seq > seqs[key] {
			seqs[key] = seq
		}
	}
	return seqs
}
