package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/crs/schema"
	"go.uber.org/zap/zapcore"
)

// Default values for configuration.
const (
	DefaultLogLevel      = "warn"
	DefaultTargetVersion = -1
	MinTableWidth        = 40
)

// Config holds the runtime configuration for every command.
// This struct is the "final, validated" config.
type Config struct {
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Detail     bool
	Explain    bool
	InputFile  string

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	TargetVersion int
	LogLevel      string

	UseColors bool // Enable colored band labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Detail         bool   `mapstructure:"detail"`
	Color          string `mapstructure:"color"`
	LogLevel       string `mapstructure:"log-level"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from scoreCmd.Flags() ---
	Explain bool   `mapstructure:"explain"`
	Input   string `mapstructure:"input"`

	// --- Fields from storeMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-storage fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.InputFile = strings.TrimSpace(input.Input)
	cfg.TargetVersion = input.TargetVersion

	colors, err := parseColor(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width != 0 && input.Width < MinTableWidth {
		return fmt.Errorf("width must be 0 (auto-detect) or at least %d (received %d)", MinTableWidth, input.Width)
	}
	cfg.Width = input.Width

	output := strings.ToLower(strings.TrimSpace(input.Output))
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(output)
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, toml, parquet, pdf", input.Output)
	}

	level := strings.ToLower(strings.TrimSpace(input.LogLevel))
	if level == "" {
		level = DefaultLogLevel
	}
	if _, err := zapcore.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	cfg.LogLevel = level

	if cfg.TargetVersion < DefaultTargetVersion {
		return fmt.Errorf("target-version must be -1 (latest), 0 (rollback) or a positive version (received %d)", cfg.TargetVersion)
	}

	return nil
}

// validateBackendConfig validates the profile store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(strings.TrimSpace(input.StoreBackend))
	if backend == "" {
		backend = string(schema.SQLiteBackend)
	}
	cfg.StoreBackend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, redis, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateDatabaseConnectionString validates the format of connection strings
// for the networked backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	case schema.RedisBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.HasPrefix(connStr, "redis://") && !strings.HasPrefix(connStr, "rediss://") {
			return fmt.Errorf("Redis connection string must be a URL starting with redis:// or rediss://")
		}
	default:
		return fmt.Errorf("unsupported store backend: %s", backend)
	}
	return nil
}

// ValidateOutputFor checks that the configured output format is one the command supports.
func ValidateOutputFor(cfg *Config, command string, allowed ...schema.OutputMode) error {
	for _, mode := range allowed {
		if cfg.Output == mode {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, mode := range allowed {
		names[i] = string(mode)
	}
	return fmt.Errorf("%s does not support output format '%s'. must be %s", command, cfg.Output, strings.Join(names, ", "))
}

// parseColor treats an unset value as enabled.
func parseColor(s string) (bool, error) {
	if strings.TrimSpace(s) == "" {
		return true, nil
	}
	return schema.ParseBoolString(s)
}
