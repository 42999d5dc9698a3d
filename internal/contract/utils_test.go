package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		total int
		label string
	}{
		{"low", 380, schema.BandLow},
		{"possible", 411, schema.BandPossible},
		{"moderate", 470, schema.BandModerate},
		{"good", 599, schema.BandGood},
		{"very high", 1011, schema.BandVeryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetColorLabel(tt.total), tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, path, f.Name())

	_, err = SelectOutputFile(filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
}

func TestXDGDataHome(t *testing.T) {
	t.Run("explicit env", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		assert.Equal(t, "/tmp/xdg-data", XDGDataHome())
		assert.Equal(t, filepath.Join("/tmp/xdg-data", "crs", "profiles.db"), GetDBFilePath())
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)
		assert.Equal(t, filepath.Join(home, ".local", "share"), XDGDataHome())
	})
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "Current", 10, "Current"},
		{"truncated", "With Canadian Work", 10, "With Ca..."},
		{"tiny width untouched", "Current", 3, "Current"},
		{"wide runes", "日本語日本語", 7, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.width))
		})
	}
}

func TestInitLogger(t *testing.T) {
	l := InitLogger("debug")
	require.NotNil(t, l)
	assert.Same(t, l, Logger())

	// Unknown levels fall back rather than fail.
	l = InitLogger("chatty")
	assert.NotNil(t, l)
	SyncLogger()
}
