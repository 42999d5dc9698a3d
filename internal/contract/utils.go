package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/huangsam/crs/schema"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

// AppName is used for the data directory and the MCP server name.
const AppName = "crs"

// Color variables for console output, one per guide band.
var (
	VeryHighColor = color.New(color.FgGreen, color.Bold) // strongest chance of invitation.
	GoodColor     = color.New(color.FgGreen)
	ModerateColor = color.New(color.FgYellow)
	PossibleColor = color.New(color.FgMagenta)
	LowColor      = color.New(color.FgRed, color.Bold) // alternative pathways advised.
)

// GetColorLabel returns a colored band label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(total int) string {
	text := schema.GetPlainLabel(total)

	switch text {
	case schema.BandVeryHigh:
		return VeryHighColor.Sprint(text)
	case schema.BandGood:
		return GoodColor.Sprint(text)
	case schema.BandModerate:
		return ModerateColor.Sprint(text)
	case schema.BandPossible:
		return PossibleColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	Logger().Error(msg, zap.Error(err))
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	Logger().Debug(msg, zap.Error(err))
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// XDGDataHome returns $XDG_DATA_HOME, falling back to ~/.local/share.
func XDGDataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// GetDBFilePath returns the path to the SQLite DB file for profile storage.
func GetDBFilePath() string {
	return filepath.Join(XDGDataHome(), AppName, "profiles.db")
}

// TruncateName shortens a profile name to a maximum display width with an ellipsis suffix.
// Wide runes count as two columns.
func TruncateName(name string, maxWidth int) string {
	if maxWidth <= 3 || runewidth.StringWidth(name) <= maxWidth {
		return name
	}
	return runewidth.Truncate(name, maxWidth, "...")
}
