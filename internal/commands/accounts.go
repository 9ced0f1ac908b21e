package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/model"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage tracked brokerage accounts",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsAddCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			for _, a := range e.roster.All() {
				marker := " "
				if a.Name == e.cfg.DefaultAccount {
					marker = "*"
				}
				fmt.Printf("%s %-16s %s\n", marker, a.Name, a.Broker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	return cmd
}

func newAccountsAddCommand() *cobra.Command {
	var dataDir string
	var broker string
	var notes string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Track a new brokerage account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}

			a := model.Account{
				Name:   args[0],
				Broker: broker,
				Opened: time.Now().UTC().Truncate(24 * time.Hour),
				Notes:  notes,
			}
			if err := e.roster.Add(a); err != nil {
				return err
			}
			if err := e.roster.Save(e.root); err != nil {
				return err
			}

			fmt.Printf("Tracking account %s (%s)\n", a.Name, a.Broker)
			e.snapshot(fmt.Sprintf("accounts: add %s", a.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&broker, "broker", "robinhood", "broker name")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}
