// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"lrocha/extrato-csv/internal/common"
	"lrocha/extrato-csv/internal/config"
	"lrocha/extrato-csv/internal/logging"
)

// CommonFlags are the flags shared by the subcommands.
type CommonFlags struct {
	Input   string
	Output  string
	Profile string
	Format  string
}

var (
	// Log is the shared logger instance for commands, rebuilt from config in
	// PersistentPreRun.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "extrato-csv",
		Short: "Categoriza e resume extratos bancários em CSV.",
		Long: `extrato-csv ingests a bank-statement CSV export (Data,
Descricao_Transacao, Valor), categorizes every transaction with an ordered
keyword table and produces income/expense KPIs, a category breakdown and
daily spending series.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Configuration error: %v", err)
			}
			Cfg = cfg
			Log = cfg.NewLogger()

			common.SetDelimiter(cfg.Delimiter())
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Profile, "profile", "p", "", "Categorization profile (personal or business)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format (text, json or csv)")
}

// ProfileName resolves the active profile: the flag when set, otherwise the
// configured default.
func ProfileName() string {
	if SharedFlags.Profile != "" {
		return SharedFlags.Profile
	}
	if Cfg != nil {
		return Cfg.Profile.Name
	}
	return "personal"
}

// ReportFormat resolves the report format the same way.
func ReportFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if Cfg != nil {
		return Cfg.Report.Format
	}
	return "text"
}
