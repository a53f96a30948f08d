// Package categorize handles one-off description categorization from the
// command line.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"lrocha/extrato-csv/cmd/root"
	"lrocha/extrato-csv/internal/categorizer"
	"lrocha/extrato-csv/internal/store"
)

var description string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Run the active profile's keyword table against one description and
print the resulting category label.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	profiles := store.NewProfileStore(root.Log)
	profile, err := profiles.LoadProfile(root.ProfileName())
	if err != nil {
		return err
	}

	category := categorizer.New(profile, root.Log).Categorize(description)
	fmt.Println(category)
	return nil
}
