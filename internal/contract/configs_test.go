package contract

import (
	"testing"

	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		input       *ConfigRawInput
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "empty input uses defaults",
			input: &ConfigRawInput{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
				assert.True(t, cfg.UseColors)
			},
		},
		{
			name: "json output with explain",
			input: &ConfigRawInput{
				Output:  "JSON",
				Explain: true,
				Color:   "no",
				Input:   "  applicant.yaml ",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.JSONOut, cfg.Output)
				assert.True(t, cfg.Explain)
				assert.False(t, cfg.UseColors)
				assert.Equal(t, "applicant.yaml", cfg.InputFile)
			},
		},
		{
			name:        "invalid output",
			input:       &ConfigRawInput{Output: "xml"},
			expectError: true,
		},
		{
			name:        "invalid color",
			input:       &ConfigRawInput{Color: "maybe"},
			expectError: true,
		},
		{
			name:        "width too small",
			input:       &ConfigRawInput{Width: 10},
			expectError: true,
		},
		{
			name:  "explicit width",
			input: &ConfigRawInput{Width: 120},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 120, cfg.Width)
			},
		},
		{
			name:        "invalid log level",
			input:       &ConfigRawInput{LogLevel: "chatty"},
			expectError: true,
		},
		{
			name:        "invalid target version",
			input:       &ConfigRawInput{TargetVersion: -2},
			expectError: true,
		},
		{
			name:        "invalid backend",
			input:       &ConfigRawInput{StoreBackend: "mongodb"},
			expectError: true,
		},
		{
			name:        "redis backend without url",
			input:       &ConfigRawInput{StoreBackend: "redis"},
			expectError: true,
		},
		{
			name:  "redis backend with url",
			input: &ConfigRawInput{StoreBackend: "redis", StoreDBConnect: "redis://localhost:6379/0"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.RedisBackend, cfg.StoreBackend)
				assert.Equal(t, "redis://localhost:6379/0", cfg.StoreDBConnect)
			},
		},
		{
			name:  "none backend",
			input: &ConfigRawInput{StoreBackend: "none"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.NoneBackend, cfg.StoreBackend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := ProcessAndValidate(cfg, tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name      string
		backend   schema.DatabaseBackend
		connStr   string
		expectErr bool
	}{
		{"sqlite ignores connection string", schema.SQLiteBackend, "", false},
		{"none ignores connection string", schema.NoneBackend, "anything", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/crs", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/crs", true},
		{"mysql missing database", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=crs dbname=crs", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=crs", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"redis valid", schema.RedisBackend, "redis://localhost:6379", false},
		{"rediss valid", schema.RedisBackend, "rediss://user:pw@cache:6380/1", false},
		{"redis wrong scheme", schema.RedisBackend, "localhost:6379", true},
		{"unknown backend", schema.DatabaseBackend("oracle"), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputFor(t *testing.T) {
	cfg := &Config{Output: schema.PDFOut}
	assert.NoError(t, ValidateOutputFor(cfg, "report", schema.PDFOut, schema.TextOut))

	err := ValidateOutputFor(cfg, "bands", schema.TextOut, schema.JSONOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bands does not support output format 'pdf'")
	assert.Contains(t, err.Error(), "text, json")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Output: schema.CSVOut, Width: 100}
	clone := cfg.Clone()
	clone.Width = 50
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, schema.CSVOut, clone.Output)
}
