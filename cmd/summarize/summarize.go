// Package summarize runs the full pipeline: parse the statement, categorize
// every transaction and render the aggregated summary.
package summarize

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lrocha/extrato-csv/cmd/root"
	"lrocha/extrato-csv/internal/categorizer"
	"lrocha/extrato-csv/internal/extratoparser"
	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
	"lrocha/extrato-csv/internal/report"
	"lrocha/extrato-csv/internal/store"
	"lrocha/extrato-csv/internal/summary"
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Parse, categorize and summarize a statement CSV",
	Long: `Parse a bank-statement CSV export, categorize each transaction with
the active profile's keyword table and print or write the financial summary.`,
	RunE: summarizeFunc,
}

func summarizeFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use --input)")
	}

	profiles := store.NewProfileStore(root.Log)
	profile, err := profiles.LoadProfile(root.ProfileName())
	if err != nil {
		return err
	}

	transactions, err := extratoparser.ParseFile(root.SharedFlags.Input, root.Log)
	if err != nil {
		return err
	}

	categorized := categorizer.New(profile, root.Log).CategorizeAll(transactions)
	result := summary.Compute(categorized, profile)

	root.Log.WithFields(
		logging.Field{Key: "profile", Value: profile.Name},
		logging.Field{Key: "transactions", Value: result.TransactionCount},
		logging.Field{Key: "balance", Value: result.Balance.StringFixed(2)},
	).Info("Summary computed")

	output, err := report.NewGenerator(root.Log).Generate(result, categorized, root.ReportFormat())
	if err != nil {
		return err
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(string(output))
		return nil
	}
	if err := os.WriteFile(root.SharedFlags.Output, output, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	root.Log.WithField("file", root.SharedFlags.Output).Info("Report written")
	return nil
}
