package cmd

import (
	"github.com/huangsam/crs/core"
	"github.com/spf13/cobra"
)

// bandsCmd prints the interpretation guide.
var bandsCmd = &cobra.Command{
	Use:     "bands",
	Short:   "Show the score interpretation guide",
	Long:    `Print the score ranges that map a CRS total to an invitation outlook.`,
	Args:    cobra.NoArgs,
	PreRunE: configSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteBands(rootCtx, cfg)
	},
}
