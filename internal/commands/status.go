package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/ledger"
)

func newStatusCommand() *cobra.Command {
	var dataDir string
	var account string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the dividend recovery dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			name, err := e.resolveAccount(account)
			if err != nil {
				return err
			}
			return runStatus(e, name)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&account, "account", "", "account to show (default from config)")

	return cmd
}

func runStatus(e *env, account string) error {
	l, err := e.store.Load(account)
	if err != nil {
		return err
	}

	fmt.Printf("Account:            %s\n", account)
	fmt.Printf("Initial investment: %s\n", e.formatMoney(l.InitialInvestment))
	fmt.Printf("Total dividends:    %s (%d transactions)\n",
		e.formatMoney(l.TotalDividends), len(l.Entries))

	if l.PrincipalRecovered {
		fmt.Printf("Principal:          recovered")
		if l.RecoveryDate != nil {
			fmt.Printf(" on %s", l.RecoveryDate.Format("2006-01-02"))
		}
		fmt.Println()
		fmt.Printf("Post-recovery gains: %s\n", e.formatMoney(l.PostRecoveryGains))
	} else {
		fmt.Printf("Principal:          %s%% recovered\n", ledger.Progress(l).StringFixed(1))
	}

	if !l.UpdatedAt.IsZero() {
		fmt.Printf("Last updated:       %s\n", l.UpdatedAt.Format("2006-01-02 15:04 MST"))
	}
	return nil
}
