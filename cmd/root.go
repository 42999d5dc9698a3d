package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/iocache"
	"github.com/huangsam/crs/schema"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// storeManager is the global profile store manager instance.
var storeManager contract.StoreManager

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "crs",
	Short: "Score and compare Express Entry CRS profiles.",
	Long: `crs computes Comprehensive Ranking System scores for up to three applicant profiles,
compares them side by side and renders the results as tables, documents or a PDF report.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setConfigSearch points viper at the config file.
func setConfigSearch() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".crs")  // Name of config file (without extension)
		viper.SetConfigType("yaml")  // We'll use YAML format
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigSearch()

	// A missing .env file is the normal case
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		contract.LogWarn("Ignoring .env file", err)
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("CRS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("store-backend", schema.SQLiteBackend)
	viper.SetDefault("store-db-connect", "")
	viper.SetDefault("color", "yes")
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("target-version", contract.DefaultTargetVersion)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// processConfig merges every source into input and validates it into cfg.
// Local flags are bound per invocation: several commands share a key such as
// explain and viper keeps one binding per key.
func processConfig(cmd *cobra.Command) error {
	if cmd != nil {
		if err := viper.BindPFlags(cmd.LocalNonPersistentFlags()); err != nil {
			return fmt.Errorf("unable to bind %s flags: %w", cmd.Name(), err)
		}
	}

	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	contract.InitLogger(cfg.LogLevel)
	return nil
}

// sharedSetup unmarshals config, runs validation and opens the profile store.
func sharedSetup(ctx context.Context, cmd *cobra.Command, _ []string) error {
	if err := processConfig(cmd); err != nil {
		return err
	}

	// Initialize the profile store with validated config
	if err := iocache.InitStores(ctx, cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize profile store: %w", err)
	}
	storeManager = iocache.Manager
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// configSetupWrapper validates configuration without opening the profile store.
// Commands that never touch stored profiles, or that manage the store's files
// and tables directly, use it instead of sharedSetupWrapper.
func configSetupWrapper(cmd *cobra.Command, _ []string) error {
	return processConfig(cmd)
}

// outputExplicit reports whether the user chose an output format through a flag,
// the environment or the config file rather than taking the default.
func outputExplicit(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("output") {
		return true
	}
	if _, ok := os.LookupEnv("CRS_OUTPUT"); ok {
		return true
	}
	return viper.InConfig("output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
