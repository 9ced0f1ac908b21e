package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/ledger"
)

func newSettingsCommand() *cobra.Command {
	var dataDir string
	var account string
	var investment string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Update the initial investment amount",
		Long: "Update the initial investment amount.\n\n" +
			"Recovery status is recomputed against the dividends already\n" +
			"ingested: raising the investment above the running total takes\n" +
			"the ledger back out of the recovered state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			name, err := e.resolveAccount(account)
			if err != nil {
				return err
			}
			return runSettings(e, name, investment)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&account, "account", "", "account to update (default from config)")
	cmd.Flags().StringVar(&investment, "investment", "", "initial investment amount (required)")
	_ = cmd.MarkFlagRequired("investment")

	return cmd
}

func runSettings(e *env, account, investment string) error {
	amount, err := decimal.NewFromString(investment)
	if err != nil {
		return fmt.Errorf("invalid investment amount %q: %w", investment, err)
	}

	l, err := e.store.Load(account)
	if err != nil {
		return err
	}

	wasRecovered := l.PrincipalRecovered
	if err := ledger.SetInitialInvestment(l, amount, time.Now().UTC()); err != nil {
		return err
	}

	if err := e.store.Save(account, l); err != nil {
		return err
	}

	fmt.Printf("Initial investment set to %s\n", e.formatMoney(amount))
	switch {
	case l.PrincipalRecovered && !wasRecovered:
		fmt.Printf("Dividends already cover it: principal recovered, gains %s\n",
			e.formatMoney(l.PostRecoveryGains))
	case !l.PrincipalRecovered && wasRecovered:
		fmt.Println("Ledger is no longer recovered at the new amount")
	}

	e.snapshot(fmt.Sprintf("settings: %s investment -> %s", account, amount))
	return nil
}
