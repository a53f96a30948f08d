// Package profiles lists and exports the categorization profiles.
package profiles

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lrocha/extrato-csv/cmd/root"
	"lrocha/extrato-csv/internal/store"
)

var exportPath string

// Cmd represents the profiles command
var Cmd = &cobra.Command{
	Use:   "profiles",
	Short: "List categorization profiles or show one profile's keyword table",
	Long: `Without --profile, list every loadable profile. With --profile,
print that profile's ordered categories and keywords. With --export, write
the profile to a YAML file that can be edited and placed in one of the
standard override locations.`,
	RunE: profilesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&exportPath, "export", "e", "", "Write the selected profile to this YAML file")
}

func profilesFunc(cmd *cobra.Command, args []string) error {
	profiles := store.NewProfileStore(root.Log)

	if root.SharedFlags.Profile == "" && exportPath == "" {
		names, err := profiles.ListProfiles()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	profile, err := profiles.LoadProfile(root.ProfileName())
	if err != nil {
		return err
	}

	if exportPath != "" {
		return profiles.SaveProfile(profile, exportPath)
	}

	fmt.Printf("%s (fallback: %s)\n", profile.Name, profile.Fallback)
	for _, category := range profile.Categories {
		marker := ""
		if category.Name == profile.RevenueCategory {
			marker = " [receita]"
		}
		if category.Name == profile.TaxCategory {
			marker = " [imposto]"
		}
		fmt.Printf("  %s%s: %s\n", category.Name, marker, strings.Join(category.Keywords, ", "))
	}
	return nil
}
