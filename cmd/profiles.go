package cmd

import (
	"github.com/huangsam/crs/core"
	"github.com/spf13/cobra"
)

// profilesCmd groups the commands that read and edit the stored comparison set.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage the stored comparison set (up to three profiles)",
	Long: `Manage the profiles kept in the configured store.

The store starts with three default profiles. Only the raw inputs are
persisted; scores are recomputed on every read.

Subcommands:
  list   - Ranked list of profiles with totals and bands
  show   - Breakdown and every input of one profile
  set    - Change input fields of one profile
  rename - Rename a profile
  add    - Add a profile with default inputs
  remove - Remove a profile
  reset  - Restore the three default profiles
  import - Replace the set with a JSON, YAML or TOML document
  export - Write the set as a document or parquet file`,
}

var profilesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored profiles ranked by total score",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteProfilesList(rootCtx, cfg, storeManager)
	},
}

var profilesShowCmd = &cobra.Command{
	Use:     "show <name>",
	Short:   "Show the breakdown and every input of a profile",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteProfileShow(rootCtx, cfg, storeManager, args[0])
	},
}

var profilesSetCmd = &cobra.Command{
	Use:   "set <name> <key=value>...",
	Short: "Change input fields of a profile",
	Long: `Apply one or more key=value assignments to a stored profile and print
its recomputed breakdown. Either every assignment is saved or none is.

Numbers out of range are clamped (age 0-120, language levels 0-10).
Booleans accept yes/no/true/false/1/0.

Examples:
  crs profiles set "Profile 1" age=29 educationLevel=masters
  crs profiles set "Profile 2" hasSpouse=yes spouseEducationLevel=bachelors
  crs profiles set "Profile 3" firstLanguage.speaking=9 provincialNomination=yes --explain`,
	Args:    cobra.MinimumNArgs(2),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteProfileSet(rootCtx, cfg, storeManager, args[0], args[1:])
	},
}

var profilesRenameCmd = &cobra.Command{
	Use:     "rename <old> <new>",
	Short:   "Rename a profile",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteProfileRename(rootCtx, cfg, storeManager, args[0], args[1])
	},
}

var profilesAddCmd = &cobra.Command{
	Use:     "add [name]",
	Short:   "Add a profile with default inputs",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		return core.ExecuteProfileAdd(rootCtx, cfg, storeManager, name)
	},
}

var profilesRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteProfileRemove(rootCtx, cfg, storeManager, args[0])
	},
}

var profilesResetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Restore the three default profiles",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteProfilesReset(rootCtx, cfg, storeManager)
	},
}

var profilesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored set with a JSON, YAML or TOML document",
	Long: `Read a profile document and replace the stored set with it.

The format follows the file extension (.json, .yaml, .yml, .toml). The
document is validated before anything is saved.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		return core.ExecuteProfilesImport(rootCtx, cfg, storeManager, args[0])
	},
}

var profilesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored set as a document or parquet file",
	Long: `Write every stored profile with its scores.

--output json, yaml, toml or parquet picks the format; otherwise the
extension of --output-file decides, and JSON is printed to stdout when
neither is given. Parquet output requires --output-file.

Examples:
  crs profiles export --output-file profiles.yaml
  crs profiles export --output parquet --output-file profiles.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteProfilesExport(rootCtx, cfg, storeManager)
	},
}
