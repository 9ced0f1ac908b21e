package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/ledger"
)

func newResetCommand() *cobra.Command {
	var dataDir string
	var account string
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all dividend data for an account",
		Long: "Discard all dividend data for an account: totals, recovery state,\n" +
			"monthly rollups, and the transaction log. Requires --confirm.\n" +
			"The prior state survives in the git history of the data directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			name, err := e.resolveAccount(account)
			if err != nil {
				return err
			}
			return runReset(e, name, confirm)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&account, "account", "", "account to reset (default from config)")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "actually do it")

	return cmd
}

func runReset(e *env, account string, confirm bool) error {
	l, err := e.store.Load(account)
	if err != nil {
		return err
	}

	if !ledger.Reset(l, confirm, time.Now().UTC()) {
		fmt.Println("Reset cancelled: pass --confirm to discard all data")
		return nil
	}

	if err := e.store.Save(account, l); err != nil {
		return err
	}

	fmt.Printf("All dividend data for %s has been reset\n", account)
	e.snapshot(fmt.Sprintf("reset: %s", account))
	return nil
}
