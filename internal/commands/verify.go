package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/ledger"
)

func newVerifyCommand() *cobra.Command {
	var dataDir string
	var account string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a ledger's stored state for internal consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			name, err := e.resolveAccount(account)
			if err != nil {
				return err
			}
			return runVerify(e, name)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&account, "account", "", "account to verify (default from config)")

	return cmd
}

func runVerify(e *env, account string) error {
	l, err := e.store.Load(account)
	if err != nil {
		return err
	}

	errs := ledger.Verify(l)
	if len(errs) == 0 {
		fmt.Printf("%s: ok (%d transactions, total %s)\n",
			account, len(l.Entries), e.formatMoney(l.TotalDividends))
		return nil
	}

	for _, ve := range errs {
		fmt.Println(ve.Error())
	}
	return fmt.Errorf("%d consistency violation(s) in %s", len(errs), account)
}
