package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/recoup-dev/recoup/internal/model"
)

// FileName is the roster file expected at the data root.
const FileName = "accounts.csv"

// Service provides in-memory lookup over the tracked-account roster.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byName[a.Name] = a
	}
	return &Service{accounts: accounts, byName: byName}
}

// Load reads accounts.csv from a data root and returns a Service.
func Load(root string) (*Service, error) {
	f, err := os.Open(filepath.Join(root, FileName))
	if err != nil {
		return nil, fmt.Errorf("opening accounts roster: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts roster: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by name.
func (s *Service) Get(name string) (model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Exists reports whether an account name exists.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Add registers a new account. The name must be directory-safe and unused.
func (s *Service) Add(a model.Account) error {
	if !ValidName(a.Name) {
		return fmt.Errorf("invalid account name %q: use lowercase letters, digits, '-' or '_'", a.Name)
	}
	if s.Exists(a.Name) {
		return fmt.Errorf("account %q already exists", a.Name)
	}
	s.accounts = append(s.accounts, a)
	s.byName[a.Name] = a
	return nil
}

// Save writes the roster to <root>/accounts.csv.
func (s *Service) Save(root string) error {
	f, err := os.Create(filepath.Join(root, FileName))
	if err != nil {
		return fmt.Errorf("creating accounts roster: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts roster: %w", err)
	}
	return nil
}

// ValidName reports whether a name is safe to use as a ledger directory.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
