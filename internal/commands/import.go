package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/recoup-dev/recoup/internal/auditlog"
	"github.com/recoup-dev/recoup/internal/importer"
	"github.com/recoup-dev/recoup/internal/ledger"
)

func newImportCommand() *cobra.Command {
	var dataDir string
	var account string
	var format string
	var all bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Ingest dividend transactions from a brokerage CSV export",
		Long: "Ingest dividend transactions from a brokerage CSV export.\n\n" +
			"With a file argument, that file is ingested. With --all, every CSV\n" +
			"waiting in <data>/import/ is ingested and moved to import/processed/.\n" +
			"Uploads are purely additive: re-importing an overlapping export\n" +
			"counts its dividends again.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("pass either a file argument or --all")
			}

			e, err := loadEnv(dataDir)
			if err != nil {
				return err
			}
			name, err := e.resolveAccount(account)
			if err != nil {
				return err
			}

			p := importer.DefaultRegistry().Get(format)
			if p == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			if all {
				return runImportAll(e, name, p)
			}
			return runImport(e, name, p, args[0], false)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&account, "account", "", "account to ingest into (default from config)")
	cmd.Flags().StringVar(&format, "format", "robinhood", "export format")
	cmd.Flags().BoolVar(&all, "all", false, "ingest every CSV in the import directory")

	return cmd
}

func runImportAll(e *env, account string, p importer.Parser) error {
	files, err := importer.Scan(e.root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		e.logger.Info("no CSV files waiting in import/")
		return nil
	}
	for _, f := range files {
		if err := runImport(e, account, p, f.Path, true); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func runImport(e *env, account string, p importer.Parser, path string, markProcessed bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening export: %w", err)
	}
	res, err := p.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	fileName := filepath.Base(path)
	if len(res.Transactions) == 0 {
		// Valid file, nothing dividend-like in it. Not an error; the
		// ledger is left untouched.
		e.logger.Warn("no dividend transactions found",
			"file", fileName, "rows", res.Scanned)
		return nil
	}

	l, err := e.store.Load(account)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	applied := ledger.Apply(l, res.Transactions, now)
	if applied.Applied == 0 {
		e.logger.Warn("all dividend rows had unparseable dates; nothing ingested",
			"file", fileName, "skipped", applied.SkippedDates)
		return nil
	}

	if err := e.store.Save(account, l); err != nil {
		return err
	}

	if err := auditlog.Append(e.root, []auditlog.Entry{{
		Timestamp:    now,
		Account:      account,
		File:         fileName,
		Scanned:      res.Scanned,
		Imported:     applied.Applied,
		SkippedRows:  res.Skipped,
		SkippedDates: applied.SkippedDates,
		NetAdded:     applied.NetAdded,
	}}); err != nil {
		return fmt.Errorf("writing import log: %w", err)
	}

	if applied.SkippedDates > 0 {
		e.logger.Warn("transactions dropped for unparseable dates",
			"file", fileName, "count", applied.SkippedDates)
	}
	if res.Skipped > 0 {
		e.logger.Info("rows skipped during parsing",
			"file", fileName, "count", res.Skipped)
	}

	fmt.Printf("Processed %d dividend transactions from %s: %s added (total %s)\n",
		applied.Applied, fileName, e.formatMoney(applied.NetAdded), e.formatMoney(l.TotalDividends))
	if l.PrincipalRecovered && l.RecoveryDate != nil && l.RecoveryDate.Equal(now) {
		fmt.Printf("Principal recovered! Dividends now cover your %s initial investment.\n",
			e.formatMoney(l.InitialInvestment))
	}

	if markProcessed {
		if err := importer.MarkProcessed(e.root, fileName); err != nil {
			return err
		}
	}

	e.snapshot(fmt.Sprintf("import: %s into %s", fileName, account))
	return nil
}
