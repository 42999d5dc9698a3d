package cmd

import (
	"github.com/huangsam/crs/core"
	"github.com/spf13/cobra"
)

// scoreCmd prints the breakdown of a single profile.
var scoreCmd = &cobra.Command{
	Use:   "score [name]",
	Short: "Show the CRS breakdown of one profile",
	Long: `Compute the eight component scores and the total of one profile.

Without a name the first stored profile is scored. With --input the profile
is read from a JSON, YAML or TOML document instead of the store.

Examples:
  # Score the first stored profile
  crs score

  # Score a stored profile and explain skill transferability
  crs score "Profile 2" --explain

  # Score a profile from a document without touching the store
  crs score Married --input profiles.yaml --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		return core.ExecuteScore(rootCtx, cfg, storeManager, name)
	},
}
