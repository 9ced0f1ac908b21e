package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "recoup",
		Short:   "Track dividend income until it recovers your principal",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSettingsCommand())
	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newMonthlyCommand())
	rootCmd.AddCommand(newResetCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newAccountsCommand())

	return rootCmd
}
