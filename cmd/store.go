package cmd

import (
	"fmt"

	"github.com/huangsam/crs/core"
	"github.com/spf13/cobra"
)

// storeCmd focused on profile store management.
//
// Note: clear and migrate use configSetupWrapper instead of sharedSetupWrapper
// so they never open the store they are about to remove or migrate.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the profile store",
	Long: `Manage the store that keeps the comparison set between runs.

Supported backends: SQLite (default), MySQL, PostgreSQL, Redis, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored profiles
  migrate - Move the SQL tables to a schema version

Examples:
  # Check store status
  crs store status

  # Use a PostgreSQL store (set connection string via env variable)
  CRS_STORE_BACKEND=postgresql CRS_STORE_DB_CONNECT="host=localhost dbname=crs" crs store status`,
}

var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show the backend, its location, the number of stored profiles, the last
update time, the schema version and the rule set that wrote the data.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteStoreStatus(rootCtx, cfg, storeManager)
	},
}

var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored profiles",
	Long: `Delete all stored profiles from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the profile tables
For Redis: Deletes the profiles key

The next command that reads profiles starts from the three defaults.`,
	Args:    cobra.NoArgs,
	PreRunE: configSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := core.ExecuteStoreClear(rootCtx, cfg); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Profile store cleared successfully.")
		return err
	},
}

var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the SQL profile tables",
	Long: `Run the embedded schema migrations against the configured SQL backend.

Examples:
  # Migrate to the latest version
  crs store migrate

  # Roll back every migration
  crs store migrate --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: configSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteStoreMigrate(rootCtx, cfg)
	},
}
