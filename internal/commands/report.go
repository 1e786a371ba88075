package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/minibank/internal/bank"
	"github.com/cleared-dev/minibank/internal/config"
	"github.com/cleared-dev/minibank/internal/report"
)

func newReportCommand() *cobra.Command {
	var file string
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the account report for a scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBank(file)
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), b, format)
		},
	}

	cmd.Flags().StringVar(&file, "file", config.FileName, "scenario file")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text or csv)")

	return cmd
}

func runReport(w io.Writer, b *bank.Bank, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "%s%s\n", heading(b), b.AccountReport())
		return err
	case "csv":
		if err := report.WriteCSV(w, b.Accounts()); err != nil {
			return fmt.Errorf("writing CSV report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or csv)", format)
	}
}

func newMonthEndCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "month-end",
		Short: "Run end-of-month processing for a scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBank(file)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", heading(b), b.EndOfMonth())
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", config.FileName, "scenario file")

	return cmd
}

// loadBank reads a scenario and replays it onto a fresh bank.
func loadBank(path string) (*bank.Bank, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	b, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building bank from %s: %w", path, err)
	}
	return b, nil
}

func heading(b *bank.Bank) string {
	if b.Name() == "" {
		return "minibank"
	}
	return b.Name()
}
