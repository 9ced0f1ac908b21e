package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/recoup-dev/recoup/internal/model"
)

const (
	ledgerFileName  = "ledger.yaml"
	entriesFileName = "transactions.csv"
)

// Service reads and writes per-account ledger state under a data root. Each
// account gets its own directory holding ledger.yaml (the aggregates) and
// transactions.csv (the append log). The CLI is the only writer; history
// and backups come from the git layer above.
type Service struct {
	root string
}

// NewService creates a store Service rooted at a data directory.
func NewService(root string) *Service {
	return &Service{root: root}
}

// Dir returns the directory holding an account's ledger files.
func (s *Service) Dir(account string) string {
	return filepath.Join(s.root, account)
}

// Load returns the account's ledger. A missing directory or missing files
// yield a zero ledger: ledgers are created lazily on first access.
func (s *Service) Load(account string) (*model.Ledger, error) {
	l := &model.Ledger{}
	dir := s.Dir(account)

	data, err := os.ReadFile(filepath.Join(dir, ledgerFileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fresh account.
	case err != nil:
		return nil, fmt.Errorf("reading ledger for %s: %w", account, err)
	default:
		if err := unmarshalLedger(data, l); err != nil {
			return nil, fmt.Errorf("ledger for %s: %w", account, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, entriesFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transactions for %s: %w", account, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("transactions for %s: %w", account, err)
	}
	l.Entries = entries
	return l, nil
}

// Save writes the full ledger state for an account, creating its directory
// if needed.
func (s *Service) Save(account string, l *model.Ledger) error {
	dir := s.Dir(account)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir for %s: %w", account, err)
	}

	data, err := marshalLedger(l)
	if err != nil {
		return fmt.Errorf("marshaling ledger for %s: %w", account, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ledgerFileName), data, 0o644); err != nil {
		return fmt.Errorf("writing ledger for %s: %w", account, err)
	}

	f, err := os.Create(filepath.Join(dir, entriesFileName))
	if err != nil {
		return fmt.Errorf("creating transactions for %s: %w", account, err)
	}
	defer f.Close()

	if err := WriteEntries(f, l.Entries); err != nil {
		return fmt.Errorf("writing transactions for %s: %w", account, err)
	}
	return nil
}
