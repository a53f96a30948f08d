// Package extrato is the public entry point for embedding the statement
// pipeline. A presentation layer (web UI, dashboard, chart renderer) calls
// Process once per uploaded dataset and reads every table and KPI it needs
// from the returned Result; nothing is recomputed downstream.
package extrato

import (
	"io"

	"lrocha/extrato-csv/internal/categorizer"
	"lrocha/extrato-csv/internal/extratoparser"
	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/models"
	"lrocha/extrato-csv/internal/report"
	"lrocha/extrato-csv/internal/store"
	"lrocha/extrato-csv/internal/summary"
)

// Result bundles everything one run produces: the categorized working set,
// the canonical aggregation views and the formatted detail table.
type Result struct {
	Profile      models.Profile
	Transactions []models.Transaction
	Summary      *summary.Summary
	DetailTable  []report.DetailRow
}

// Options configures a run. The zero value uses the personal profile and a
// default logger.
type Options struct {
	// ProfileName selects the keyword-table profile ("personal" when empty).
	ProfileName string
	// Profile, when set, is used directly and ProfileName is ignored.
	Profile *models.Profile
	// Logger receives pipeline diagnostics.
	Logger logging.Logger
}

// Process runs the whole pipeline on statement CSV data: schema validation,
// row parsing with silent drops, categorization and aggregation. It either
// returns a complete Result or an error with no partial output.
func Process(r io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var profile models.Profile
	if opts.Profile != nil {
		profile = *opts.Profile
		if err := profile.Validate(); err != nil {
			return nil, err
		}
	} else {
		loaded, err := store.NewProfileStore(logger).LoadProfile(opts.ProfileName)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	transactions, err := extratoparser.ParseReader(r, logger)
	if err != nil {
		return nil, err
	}

	categorized := categorizer.New(profile, logger).CategorizeAll(transactions)

	return &Result{
		Profile:      profile,
		Transactions: categorized,
		Summary:      summary.Compute(categorized, profile),
		DetailTable:  report.DetailRows(categorized),
	}, nil
}
