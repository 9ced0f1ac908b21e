package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/accounts"
	"github.com/recoup-dev/recoup/internal/config"
	"github.com/recoup-dev/recoup/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var account string
	var broker string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new recoup data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, account, broker, currency)
		},
	}

	cmd.Flags().StringVar(&account, "account", "main", "name of the first tracked account")
	cmd.Flags().StringVar(&broker, "broker", "robinhood", "broker of the first tracked account")
	cmd.Flags().StringVar(&currency, "currency", "USD", "display currency (ISO 4217)")

	return cmd
}

func runInit(dir, account, broker, currency string) error {
	if !accounts.ValidName(account) {
		return fmt.Errorf("invalid account name %q: use lowercase letters, digits, '-' or '_'", account)
	}

	dirs := []string{
		account,
		"import",
		filepath.Join("import", "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(account, currency)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	roster := accounts.NewService(accounts.DefaultRoster(account, broker))
	if err := roster.Save(dir); err != nil {
		return fmt.Errorf("writing accounts roster: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: new recoup data directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized recoup data directory at %s (%s)\n", dir, hash)
	return nil
}
