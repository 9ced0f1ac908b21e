package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func newMonthlyCommand() *cobra.Command {
	var dataDir string
	var account string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show dividend totals rolled up by calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			name, err := e.resolveAccount(account)
			if err != nil {
				return err
			}
			return runMonthly(e, name, asJSON)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&account, "account", "", "account to show (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit a JSON object keyed by YYYY-MM")

	return cmd
}

func runMonthly(e *env, account string, asJSON bool) error {
	l, err := e.store.Load(account)
	if err != nil {
		return err
	}

	if asJSON {
		totals := make(map[string]float64, len(l.MonthlyTotals))
		for month, amount := range l.MonthlyTotals {
			totals[month] = amount.InexactFloat64()
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(totals)
	}

	months := make([]string, 0, len(l.MonthlyTotals))
	for month := range l.MonthlyTotals {
		months = append(months, month)
	}
	sort.Strings(months)

	if len(months) == 0 {
		fmt.Println("No dividends ingested yet")
		return nil
	}
	for _, month := range months {
		fmt.Printf("%s  %s\n", month, e.formatMoney(l.MonthlyTotals[month]))
	}
	return nil
}
