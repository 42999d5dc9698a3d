package outwriter

import (
	"os"

	"github.com/huangsam/crs/internal/contract"
	"golang.org/x/term"
)

// Name column limits for comparison tables.
const (
	minNameWidth = 8
	maxNameWidth = 30
)

// getTerminalWidth returns the configured width override or the detected terminal width.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// GetMaxTableNameWidth calculates how wide each profile column header may be
// when the given number of profiles share the terminal.
func GetMaxTableNameWidth(cfg *contract.Config, profiles int) int {
	if profiles < 1 {
		profiles = 1
	}

	// Category column with borders/padding
	baseWidth := 30
	// Table borders, separators, and padding per profile column
	baseWidth += 3 * profiles

	available := (getTerminalWidth(cfg) - baseWidth) / profiles
	if available < minNameWidth {
		return minNameWidth
	}
	if available > maxNameWidth {
		return maxNameWidth
	}
	return available
}
