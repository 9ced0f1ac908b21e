package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/recoup-dev/recoup/internal/accounts"
	"github.com/recoup-dev/recoup/internal/config"
	"github.com/recoup-dev/recoup/internal/gitops"
	"github.com/recoup-dev/recoup/internal/store"
)

// env bundles what every data-dir command needs.
type env struct {
	root   string
	cfg    *config.Config
	store  *store.Service
	roster *accounts.Service
	logger *log.Logger
}

// loadEnv resolves a data directory and loads its config and roster.
func loadEnv(dataDir string) (*env, error) {
	root, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s is not a recoup data directory (run 'recoup init' first)", root)
		}
		return nil, err
	}

	roster, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}

	return &env{
		root:   root,
		cfg:    cfg,
		store:  store.NewService(root),
		roster: roster,
		logger: newLogger(),
	}, nil
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}

// resolveAccount picks the account from the flag or the configured default,
// and checks it against the roster.
func (e *env) resolveAccount(flag string) (string, error) {
	name := flag
	if name == "" {
		name = e.cfg.DefaultAccount
	}
	if name == "" {
		return "", fmt.Errorf("no account given and no default_account configured")
	}
	if !e.roster.Exists(name) {
		return "", fmt.Errorf("unknown account %q (see 'recoup accounts list')", name)
	}
	return name, nil
}

// snapshot commits the data directory when auto-commit is enabled. Snapshot
// failures are reported but never fail the operation that produced them.
func (e *env) snapshot(message string) {
	if !e.cfg.Git.AutoCommit {
		return
	}
	hash, err := gitops.CommitAll(e.root, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail)
	if err != nil {
		e.logger.Warn("git snapshot failed", "err", err)
		return
	}
	if hash != "" {
		e.logger.Debug("snapshot committed", "commit", hash)
	}
}

// formatMoney renders an amount in the configured display currency.
func (e *env) formatMoney(d decimal.Decimal) string {
	code := e.cfg.Display.Currency
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	units := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(units, cur.Code).Display()
}
