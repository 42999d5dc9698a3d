package cmd

import (
	"github.com/huangsam/crs/core"
	"github.com/spf13/cobra"
)

// compareCmd prints stored profiles side by side.
var compareCmd = &cobra.Command{
	Use:   "compare [names...]",
	Short: "Compare stored profiles category by category",
	Long: `Show every score category for each stored profile, ranked by total score,
with the interpretation band of each total.

Without names every stored profile is compared.

Examples:
  # Compare all stored profiles
  crs compare

  # Compare two profiles as CSV
  crs compare "Profile 1" "Profile 3" --output csv

  # Export the comparison as a parquet file
  crs compare --output parquet --output-file scores.parquet`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteCompare(rootCtx, cfg, storeManager, args)
	},
}
