package cmd

import (
	"github.com/huangsam/crs/core"
	"github.com/huangsam/crs/schema"
	"github.com/spf13/cobra"
)

// reportCmd renders the results document.
var reportCmd = &cobra.Command{
	Use:   "report [names...]",
	Short: "Render the CRS results report",
	Long: `Render the results document: the comparison table, the interpretation
guide and one detail page per profile listing every input.

The report is written as a PDF to CRS_Calculator_Results.pdf unless
--output or --output-file says otherwise. --output text prints the same
document with form-feed page breaks.

Examples:
  # Write CRS_Calculator_Results.pdf
  crs report

  # Write the PDF somewhere else
  crs report --output-file results.pdf

  # Print the report to the terminal
  crs report --output text`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		if !outputExplicit(cmd) {
			cfg.Output = schema.PDFOut
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteReport(rootCtx, cfg, storeManager, args)
	},
}
