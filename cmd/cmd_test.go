package cmd

import (
	"testing"

	"github.com/huangsam/crs/schema"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		path []string
		use  string
	}{
		{[]string{"score"}, "score [name]"},
		{[]string{"compare"}, "compare [names...]"},
		{[]string{"report"}, "report [names...]"},
		{[]string{"bands"}, "bands"},
		{[]string{"mcp"}, "mcp"},
		{[]string{"version"}, "version"},
		{[]string{"profiles", "set"}, "set <name> <key=value>..."},
		{[]string{"profiles", "export"}, "export"},
		{[]string{"store", "migrate"}, "migrate"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			found, _, err := rootCmd.Find(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.use, found.Use)
		})
	}
}

func TestCommandArgs(t *testing.T) {
	assert.Error(t, profilesSetCmd.Args(profilesSetCmd, []string{"Profile 1"}))
	assert.NoError(t, profilesSetCmd.Args(profilesSetCmd, []string{"Profile 1", "age=29", "hasSpouse=yes"}))
	assert.Error(t, profilesRenameCmd.Args(profilesRenameCmd, []string{"Profile 1"}))
	assert.Error(t, scoreCmd.Args(scoreCmd, []string{"a", "b"}))
	assert.Error(t, bandsCmd.Args(bandsCmd, []string{"extra"}))
}

func TestSharedExplainFlag(t *testing.T) {
	for _, c := range []*cobra.Command{scoreCmd, profilesSetCmd} {
		assert.NotNil(t, c.Flags().Lookup("explain"), c.Name())
	}
	assert.NotNil(t, scoreCmd.Flags().Lookup("input"))
	assert.NotNil(t, storeMigrateCmd.Flags().Lookup("target-version"))
}

func TestOutputExplicit(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "report"}
		c.Flags().String("output", string(schema.TextOut), "")
		return c
	}

	t.Run("default", func(t *testing.T) {
		assert.False(t, outputExplicit(newCmd()))
	})

	t.Run("flag", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("output", "json"))
		assert.True(t, outputExplicit(c))
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("CRS_OUTPUT", "text")
		assert.True(t, outputExplicit(newCmd()))
	})
}
